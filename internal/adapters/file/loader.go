// Package file implements ports.ModelLoader for the flat MDP input
// format: each non-blank line describes one state as
//
//	state_name reward (action1 dest1 prob1) (action2 dest2 prob2) ...
//
// Lines are whitespace-tokenized; the parentheses are decoration, each
// action is simply three consecutive tokens.
package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lattice-engine/lattice/pkg/domain"
)

// Loader reads a model from a flat file on disk.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load opens the file and parses it into a model.
func (l *Loader) Load(ctx context.Context) (*domain.Model, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer f.Close()

	return Parse(ctx, f)
}

// Parse reads state lines from r in order. A state name that repeats
// replaces the earlier definition but keeps its original position,
// matching the insertion-order semantics the engine depends on.
func Parse(ctx context.Context, r io.Reader) (*domain.Model, error) {
	model := domain.NewModel()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: want at least a state name and a reward, got %q", line, scanner.Text())
		}

		name := fields[0]
		reward, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid reward %q for state %q", line, fields[1], name)
		}

		state, err := domain.NewStateModel(name, reward, stripParens(fields[2:]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		model.Add(state)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	return model, nil
}

// stripParens removes the leading "(" from each action token and the
// trailing ")" from each probability token, leaving the bare triples the
// domain constructor expects. Tokens that never had parentheses pass
// through untouched.
func stripParens(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		switch i % 3 {
		case 0:
			out[i] = strings.TrimPrefix(tok, "(")
		case 2:
			out[i] = strings.TrimSuffix(tok, ")")
		default:
			out[i] = tok
		}
	}
	return out
}
