package ports

import (
	"context"

	"github.com/lattice-engine/lattice/pkg/domain"
)

// ModelLoader defines how the engine retrieves the MDP state collection.
// This allows the input layer (flat file, memory, HTTP payload) to be
// decoupled from the iteration core.
type ModelLoader interface {
	// Load reads and constructs the full state model. State and action
	// ordering must reflect the source order, both are observable in
	// tie-breaking and rendering.
	Load(ctx context.Context) (*domain.Model, error)
}
