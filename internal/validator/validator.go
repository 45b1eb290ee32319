// Package validator checks the structural soundness of a loaded model
// before it is handed to the engine.
package validator

import (
	"fmt"
	"math"
	"strings"

	"github.com/lattice-engine/lattice/pkg/domain"
)

// massTolerance bounds the accepted drift of an action's probability
// mass from 1.0, absorbing decimal round-off in hand-written inputs.
const massTolerance = 1e-9

// ValidateModel checks that every action destination exists in the model
// and that each action's outcome probabilities sum to 1.0.
// All findings are collected before failing so one pass reports everything.
func ValidateModel(model *domain.Model) error {
	var problems []string

	for _, s := range model.States() {
		for _, a := range s.Actions {
			mass := 0.0
			for _, o := range a.Outcomes {
				if _, ok := model.Get(o.To); !ok {
					problems = append(problems, fmt.Sprintf(
						"state %q action %q references unknown state %q", s.Name, a.Name, o.To))
				}
				mass += o.Prob
			}
			if len(a.Outcomes) > 0 && math.Abs(mass-1) > massTolerance {
				problems = append(problems, fmt.Sprintf(
					"state %q action %q probabilities sum to %g, want 1", s.Name, a.Name, mass))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("found %d problems:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}
	return nil
}
