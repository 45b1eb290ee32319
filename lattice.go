package lattice

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/lattice-engine/lattice/internal/adapters/file"
	"github.com/lattice-engine/lattice/internal/logging"
	"github.com/lattice-engine/lattice/internal/presentation/text"
	"github.com/lattice-engine/lattice/internal/runtime"
	"github.com/lattice-engine/lattice/pkg/domain"
	"github.com/lattice-engine/lattice/pkg/ports"
)

// Version is the release version reported by the CLI.
const Version = "0.1.0"

// Engine is the high-level entry point for the Lattice library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	loader  ports.ModelLoader
	model   *domain.Model
	logger  *slog.Logger
	horizon int
	Name    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom ModelLoader, bypassing the default
// flat-file adapter.
func WithLoader(l ports.ModelLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithModel injects an already-built model, skipping loading entirely.
func WithModel(m *domain.Model) Option {
	return func(e *Engine) {
		e.model = m
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHorizon sets the iteration count used when Solve is called without
// an explicit target (default: domain.DefaultHorizon).
func WithHorizon(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.horizon = n
		}
	}
}

// New initializes a new Lattice Engine for the given discount factor.
// By default it reads the flat MDP file at modelPath; if WithLoader or
// WithModel is provided, modelPath can be empty.
//
// The discount factor is validated here: construction fails with
// domain.ErrInvalidDiscount outside [0, 1].
func New(modelPath string, discount float64, opts ...Option) (*Engine, error) {
	eng := &Engine{horizon: domain.DefaultHorizon}

	// Apply Options first to check if a loader or model is provided
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	if eng.model == nil {
		if eng.loader == nil {
			if modelPath == "" {
				return nil, fmt.Errorf("modelPath is required when no custom loader or model is provided")
			}
			eng.loader = file.NewLoader(modelPath)
			eng.Name = filepath.Base(modelPath)
		}

		model, err := eng.loader.Load(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to load model: %w", err)
		}
		eng.model = model
	}

	// Enrich logger with model name if available
	if eng.Name != "" {
		eng.logger = eng.logger.With("model", eng.Name)
	}

	rt, err := runtime.NewEngine(discount, eng.model, runtime.WithLogger(eng.logger))
	if err != nil {
		return nil, err
	}
	eng.runtime = rt

	return eng, nil
}

// Solve extends the cached policy history to at least the given number
// of iterations; iterations <= 0 means the configured horizon. Already
// cached iterations are never recomputed.
func (e *Engine) Solve(iterations int) error {
	if iterations <= 0 {
		iterations = e.horizon
	}
	return e.runtime.Extend(iterations)
}

// Render formats iterations [0, end) of the cached history, clamped to
// what is cached. It is a pure read and never triggers computation.
func (e *Engine) Render(end int) string {
	return text.NewRenderer().History(e.model, e.runtime.Snapshots(), end)
}

// RenderAll formats every cached iteration.
func (e *Engine) RenderAll() string {
	return e.Render(e.runtime.Len())
}

// Snapshots returns the cached history (read-only).
func (e *Engine) Snapshots() []domain.Snapshot {
	return e.runtime.Snapshots()
}

// Iterations returns the number of cached snapshots.
func (e *Engine) Iterations() int {
	return e.runtime.Len()
}

// Model returns the underlying state model.
func (e *Engine) Model() *domain.Model {
	return e.model
}

// Plan packages the current history as a persistable Plan.
func (e *Engine) Plan(id string) *domain.Plan {
	states := make([]string, 0, e.model.Len())
	for _, s := range e.model.States() {
		states = append(states, s.Name)
	}
	return &domain.Plan{
		ID:        id,
		Discount:  e.runtime.Discount(),
		States:    states,
		Snapshots: e.runtime.Snapshots(),
	}
}
