package graph

import (
	"fmt"
	"strings"

	"github.com/lattice-engine/lattice/pkg/domain"
)

// PolicyOverlay contains a computed policy to visualize on the graph:
// the chosen action per state, typically from the last cached snapshot.
type PolicyOverlay struct {
	Chosen map[string]string
}

// GenerateMermaid produces a Mermaid flowchart syntax string from the model.
// It applies semantic styling:
// - Absorbing state (no actions): ((Circle))
// - Default: [Rectangle]
// Edges are labelled "action p=<prob>"; the overlay, if provided, draws
// the chosen action's edges with thick arrows and highlights the states.
func GenerateMermaid(model *domain.Model, overlay *PolicyOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, s := range model.States() {
		// Sanitize ID for Mermaid
		safeID := sanitizeMermaidID(s.Name)

		opener, closer := "[", "]"
		if len(s.Actions) == 0 {
			opener, closer = "((", "))" // Absorbing
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s <br/> r=%g\"%s\n", safeID, opener, s.Name, s.Reward, closer))

		chosen := ""
		if overlay != nil {
			chosen = overlay.Chosen[s.Name]
		}

		for _, a := range s.Actions {
			for _, o := range a.Outcomes {
				safeTo := sanitizeMermaidID(o.To)
				arrow := fmt.Sprintf("-- \"%s p=%g\" -->", escapeMermaidLabel(a.Name), o.Prob)
				if a.Name == chosen {
					arrow = fmt.Sprintf("== \"%s p=%g\" ==>", escapeMermaidLabel(a.Name), o.Prob)
				}
				sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, safeTo))
			}
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef decided fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")

		for _, s := range model.States() {
			if action, ok := overlay.Chosen[s.Name]; ok && action != domain.NoAction {
				sb.WriteString(fmt.Sprintf("    class %s decided;\n", sanitizeMermaidID(s.Name)))
			}
		}
	}

	return sb.String()
}

// OverlayFromSnapshot extracts the chosen actions of one snapshot.
func OverlayFromSnapshot(snap domain.Snapshot) *PolicyOverlay {
	chosen := make(map[string]string, len(snap))
	for name, entry := range snap {
		chosen[name] = entry.Action
	}
	return &PolicyOverlay{Chosen: chosen}
}

func escapeMermaidLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
