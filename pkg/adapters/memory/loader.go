// Package memory provides in-memory implementations of the engine's
// ports, used in tests and for callers that build models programmatically.
package memory

import (
	"context"

	"github.com/lattice-engine/lattice/pkg/domain"
)

// Loader implements ports.ModelLoader over a prebuilt model.
type Loader struct {
	model *domain.Model
}

// NewLoader wraps an existing model.
func NewLoader(model *domain.Model) *Loader {
	return &Loader{model: model}
}

// NewFromStates builds a model from the given states, preserving order.
func NewFromStates(states ...*domain.StateModel) *Loader {
	return &Loader{model: domain.NewModel(states...)}
}

// Load returns the wrapped model.
func (l *Loader) Load(ctx context.Context) (*domain.Model, error) {
	return l.model, nil
}
