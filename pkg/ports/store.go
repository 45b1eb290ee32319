package ports

import (
	"context"

	"github.com/lattice-engine/lattice/pkg/domain"
)

// PlanStore defines the interface for persisting computed policy plans.
// It backs the serve surface, letting a solved plan be fetched later
// without recomputation.
type PlanStore interface {
	// Save persists the plan under its ID, overwriting any previous version.
	Save(ctx context.Context, plan *domain.Plan) error

	// Load retrieves a plan by ID.
	// Returns domain.ErrPlanNotFound if the plan does not exist.
	Load(ctx context.Context, id string) (*domain.Plan, error)

	// Delete removes a plan by ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored plans.
	List(ctx context.Context) ([]string, error)
}
