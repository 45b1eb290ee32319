package memory

import (
	"context"
	"sync"

	"github.com/lattice-engine/lattice/pkg/domain"
)

// Store implements ports.PlanStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Plan
	mu   sync.RWMutex
}

// NewStore creates a new in-memory plan store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Plan),
	}
}

// Save persists the plan in memory.
func (s *Store) Save(ctx context.Context, plan *domain.Plan) error {
	// Deep copy to ensure isolation, similar to serialization.
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[plan.ID] = copyPlan(plan)
	return nil
}

// Load retrieves a plan from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan, ok := s.data[id]
	if !ok {
		return nil, domain.ErrPlanNotFound
	}

	// Copy on read so the caller can't mutate stored state by pointer.
	return copyPlan(plan), nil
}

// Delete removes a plan.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns the stored plan IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}

func copyPlan(p *domain.Plan) *domain.Plan {
	out := &domain.Plan{
		ID:        p.ID,
		Discount:  p.Discount,
		States:    append([]string(nil), p.States...),
		Snapshots: make([]domain.Snapshot, len(p.Snapshots)),
	}
	for i, snap := range p.Snapshots {
		cp := make(domain.Snapshot, len(snap))
		for k, v := range snap {
			cp[k] = v
		}
		out.Snapshots[i] = cp
	}
	return out
}
