package runtime

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/lattice-engine/lattice/pkg/domain"
)

// Engine is the core value-iteration runner. It owns the discount factor,
// the static state model, and the append-only history of policy
// snapshots: entry i holds the best action and expected discounted value
// per state after i lookahead steps.
//
// The history only grows. Snapshot i is derived from snapshot i-1 alone,
// so already-cached entries are never recomputed.
type Engine struct {
	discount float64
	model    *domain.Model
	history  []domain.Snapshot
	logger   *slog.Logger
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine for the given discount factor and model,
// seeding the history with the base snapshot: no action chosen yet,
// value equal to each state's own reward.
//
// Returns domain.ErrInvalidDiscount if discount is outside [0, 1].
func NewEngine(discount float64, model *domain.Model, opts ...EngineOption) (*Engine, error) {
	if math.IsNaN(discount) || discount < 0 || discount > 1 {
		return nil, domain.ErrInvalidDiscount
	}

	e := &Engine{
		discount: discount,
		model:    model,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	base := make(domain.Snapshot, model.Len())
	for _, s := range model.States() {
		base[s.Name] = domain.PolicyEntry{Action: domain.NoAction, Value: s.Reward}
	}
	e.history = []domain.Snapshot{base}

	return e, nil
}

// Discount returns the configured discount factor.
func (e *Engine) Discount() float64 {
	return e.discount
}

// Model returns the underlying state model.
func (e *Engine) Model() *domain.Model {
	return e.model
}

// Len returns the number of cached snapshots (always >= 1).
func (e *Engine) Len() int {
	return len(e.history)
}

// Snapshots returns the cached history. The slice and its entries are
// shared; callers must treat them as read-only.
func (e *Engine) Snapshots() []domain.Snapshot {
	return e.history
}

// Extend grows the cached history until it holds at least target
// snapshots, computing only the missing suffix. Calling it with a target
// at or below the current length is a no-op.
//
// Extension is all-or-nothing: new snapshots are staged and appended
// only once the whole requested range has been computed, so a failed
// call leaves the history exactly as it was.
func (e *Engine) Extend(target int) error {
	if target <= len(e.history) {
		return nil
	}

	from := len(e.history)
	staged := make([]domain.Snapshot, 0, target-from)
	prev := e.history[from-1]

	for i := from; i < target; i++ {
		next := make(domain.Snapshot, e.model.Len())
		for _, s := range e.model.States() {
			entry, err := e.backup(s, prev)
			if err != nil {
				return err
			}
			next[s.Name] = entry
		}
		staged = append(staged, next)
		prev = next
	}

	e.history = append(e.history, staged...)
	e.logger.Debug("history extended", "from", from, "to", target)
	return nil
}

// backup performs one Bellman backup for a single state against the
// previous snapshot: it selects the best action and computes
// reward + discount * E[value(destination)].
//
// Selection is deterministic: actions are scanned in stored order and
// only a strictly greater expected value replaces the incumbent, so the
// first of any tied actions wins. A state with no actions keeps its
// reward and the NoAction sentinel.
func (e *Engine) backup(s *domain.StateModel, prev domain.Snapshot) (domain.PolicyEntry, error) {
	if len(s.Actions) == 0 {
		return domain.PolicyEntry{Action: domain.NoAction, Value: s.Reward}, nil
	}

	bestName := ""
	bestExpected := math.Inf(-1)

	for _, a := range s.Actions {
		expected := 0.0
		for _, o := range a.Outcomes {
			entry, ok := prev[o.To]
			if !ok {
				return domain.PolicyEntry{}, fmt.Errorf("%w: state %q action %q references %q",
					domain.ErrUnknownDestination, s.Name, a.Name, o.To)
			}
			expected += o.Prob * entry.Value
		}
		if expected > bestExpected {
			bestName = a.Name
			bestExpected = expected
		}
	}

	return domain.PolicyEntry{
		Action: bestName,
		Value:  s.Reward + e.discount*bestExpected,
	}, nil
}
