package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/lattice-engine/lattice/internal/adapters/file"
	"github.com/lattice-engine/lattice/internal/validator"
)

// RunValidate parses the model file and reports structural problems:
// unknown destination states and probability mass drift.
func RunValidate(out io.Writer, modelPath string) error {
	model, err := file.NewLoader(modelPath).Load(context.Background())
	if err != nil {
		return err
	}

	if err := validator.ValidateModel(model); err != nil {
		return err
	}

	fmt.Fprintf(out, "Model OK: %d states\n", model.Len())
	return nil
}
