package domain

import (
	"fmt"
	"strconv"
)

// Outcome is one stochastic result of taking an action: the destination
// state and the probability of landing there.
type Outcome struct {
	To   string  `json:"to"`
	Prob float64 `json:"prob"`
}

// Action groups the outcomes of one named action. Outcomes keep the
// order in which their destinations first appeared in the input.
type Action struct {
	Name     string    `json:"name"`
	Outcomes []Outcome `json:"outcomes,omitempty"`
}

// StateModel is the immutable description of a single MDP state: its
// immediate reward and the ordered table of actions available from it.
// Action order is input order and is observable, the engine breaks
// value ties in favor of the earlier action.
type StateModel struct {
	Name    string   `json:"name"`
	Reward  float64  `json:"reward"`
	Actions []Action `json:"actions,omitempty"`
}

// NewStateModel builds a StateModel from a flat list of
// (action, destination, probability) token triples, already stripped of
// the surrounding parentheses by the loader.
//
// Duplicate (action, destination) pairs are last-write-wins: the later
// probability silently replaces the earlier one, keeping the original
// position in the outcome order.
//
// Returns ErrMalformedTriple if the token count is not a multiple of
// three or a probability token does not parse as a float.
func NewStateModel(name string, reward float64, triples []string) (*StateModel, error) {
	if len(triples)%3 != 0 {
		return nil, fmt.Errorf("%w: state %q has %d transition tokens, want a multiple of 3",
			ErrMalformedTriple, name, len(triples))
	}

	s := &StateModel{Name: name, Reward: reward}
	index := make(map[string]int, len(triples)/3)

	for i := 0; i < len(triples); i += 3 {
		action, to := triples[i], triples[i+1]
		prob, err := strconv.ParseFloat(triples[i+2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: state %q action %q: bad probability %q",
				ErrMalformedTriple, name, action, triples[i+2])
		}

		pos, ok := index[action]
		if !ok {
			pos = len(s.Actions)
			index[action] = pos
			s.Actions = append(s.Actions, Action{Name: action})
		}

		a := &s.Actions[pos]
		replaced := false
		for j := range a.Outcomes {
			if a.Outcomes[j].To == to {
				a.Outcomes[j].Prob = prob
				replaced = true
				break
			}
		}
		if !replaced {
			a.Outcomes = append(a.Outcomes, Outcome{To: to, Prob: prob})
		}
	}

	return s, nil
}

// Model is the full state collection of an MDP, ordered by load order.
// State order is observable: rendering and per-iteration backups walk
// states in this order.
type Model struct {
	states []*StateModel
	byName map[string]*StateModel
}

// NewModel creates a model from the given states, preserving their order.
func NewModel(states ...*StateModel) *Model {
	m := &Model{byName: make(map[string]*StateModel, len(states))}
	for _, s := range states {
		m.Add(s)
	}
	return m
}

// Add inserts a state at the end of the order. Re-adding an existing
// name replaces the definition but keeps its original position.
func (m *Model) Add(s *StateModel) {
	if prev, ok := m.byName[s.Name]; ok {
		for i, st := range m.states {
			if st == prev {
				m.states[i] = s
				break
			}
		}
		m.byName[s.Name] = s
		return
	}
	m.states = append(m.states, s)
	m.byName[s.Name] = s
}

// Get returns the state with the given name.
func (m *Model) Get(name string) (*StateModel, bool) {
	s, ok := m.byName[name]
	return s, ok
}

// States returns the states in load order. The slice is shared; callers
// must treat it as read-only.
func (m *Model) States() []*StateModel {
	return m.states
}

// Len returns the number of states.
func (m *Model) Len() int {
	return len(m.states)
}
