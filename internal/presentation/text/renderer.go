// Package text renders cached policy snapshots as the line-per-iteration
// listing the CLI prints.
package text

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/lattice-engine/lattice/pkg/domain"
)

// Renderer formats snapshot histories. The zero profile (termenv.Ascii)
// produces plain text; a richer profile styles the chosen actions.
type Renderer struct {
	profile termenv.Profile
}

// NewRenderer creates a plain-text renderer.
func NewRenderer() *Renderer {
	return &Renderer{profile: termenv.Ascii}
}

// NewColorRenderer creates a renderer that styles output for the
// detected terminal color profile.
func NewColorRenderer() *Renderer {
	return &Renderer{profile: termenv.ColorProfile()}
}

// History renders iterations [0, end) of the cached history, one line
// per iteration, states in model order. end is clamped to the number of
// snapshots available; rendering never triggers computation.
func (r *Renderer) History(model *domain.Model, history []domain.Snapshot, end int) string {
	if end > len(history) {
		end = len(history)
	}

	lines := make([]string, 0, max(end, 0))
	for i := 0; i < end; i++ {
		lines = append(lines, r.line(model, history[i], i))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) line(model *domain.Model, snap domain.Snapshot, iteration int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "After iteration %d:", iteration+1)

	for _, s := range model.States() {
		entry := snap[s.Name]
		action := entry.Action
		if action == "" {
			action = domain.NoAction
		}
		fmt.Fprintf(&sb, " (%s %s %.4f)", s.Name, r.styleAction(action), entry.Value)
	}
	return sb.String()
}

func (r *Renderer) styleAction(action string) string {
	if r.profile == termenv.Ascii || action == domain.NoAction {
		return action
	}
	return termenv.String(action).Foreground(r.profile.Color("#818cf8")).Bold().String()
}
