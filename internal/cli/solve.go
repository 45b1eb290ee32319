// Package cli contains the thin glue the cobra commands call into,
// keeping cmd/lattice free of business logic.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/lattice-engine/lattice"
	"github.com/lattice-engine/lattice/internal/presentation/text"
	"github.com/lattice-engine/lattice/pkg/domain"
)

// SolveOptions configures a solve run.
type SolveOptions struct {
	// Iterations is the target history length; <= 0 means the default horizon.
	Iterations int
	// Color enables ANSI styling of the rendered listing.
	Color bool
	// Logger receives engine debug output; nil means silent.
	Logger *slog.Logger
}

// RunSolve loads the model file, extends the policy history, and writes
// the rendered listing to out.
func RunSolve(out io.Writer, modelPath, discountArg string, opts SolveOptions) error {
	discount, err := ParseDiscount(discountArg)
	if err != nil {
		return err
	}

	engineOpts := []lattice.Option{}
	if opts.Logger != nil {
		engineOpts = append(engineOpts, lattice.WithLogger(opts.Logger))
	}

	eng, err := lattice.New(modelPath, discount, engineOpts...)
	if err != nil {
		return err
	}
	if err := eng.Solve(opts.Iterations); err != nil {
		return err
	}

	renderer := text.NewRenderer()
	if opts.Color {
		renderer = text.NewColorRenderer()
	}
	fmt.Fprintln(out, renderer.History(eng.Model(), eng.Snapshots(), eng.Iterations()))
	return nil
}

// ParseDiscount parses the positional discount argument. A token that is
// not a number is reported the same way as an out-of-range value.
func ParseDiscount(arg string) (float64, error) {
	d, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", domain.ErrInvalidDiscount, arg)
	}
	return d, nil
}
