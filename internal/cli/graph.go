package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/lattice-engine/lattice"
	"github.com/lattice-engine/lattice/internal/adapters/file"
	"github.com/lattice-engine/lattice/internal/presentation/graph"
)

// GraphOptions configures the graph export.
type GraphOptions struct {
	// Discount enables the policy overlay when non-empty (parsed like the
	// solve argument).
	Discount string
	// Iterations is the horizon used for the overlay; <= 0 means the default.
	Iterations int
}

// RunGraph writes a Mermaid diagram of the model to out, optionally
// overlaying the computed policy at the requested horizon.
func RunGraph(out io.Writer, modelPath string, opts GraphOptions) error {
	model, err := file.NewLoader(modelPath).Load(context.Background())
	if err != nil {
		return err
	}

	var overlay *graph.PolicyOverlay
	if opts.Discount != "" {
		discount, err := ParseDiscount(opts.Discount)
		if err != nil {
			return err
		}

		eng, err := lattice.New("", discount, lattice.WithModel(model))
		if err != nil {
			return err
		}
		if err := eng.Solve(opts.Iterations); err != nil {
			return err
		}
		overlay = graph.OverlayFromSnapshot(eng.Snapshots()[eng.Iterations()-1])
	}

	fmt.Fprint(out, graph.GenerateMermaid(model, overlay))
	return nil
}
