package domain

// NoAction is the sentinel reported for iteration 0 (no lookahead yet)
// and for states that have no actions at all.
const NoAction = "None"

// DefaultHorizon is the number of iterations computed when the caller
// does not request a specific count.
const DefaultHorizon = 20

// PolicyEntry is one state's slot in a Snapshot: the chosen action and
// the expected discounted value of being in the state.
type PolicyEntry struct {
	Action string  `json:"action"`
	Value  float64 `json:"value"`
}

// Snapshot assigns every state a best action and a value at one fixed
// iteration. Snapshot i is fully determined by snapshot i-1 and the
// static model; once cached it is never recomputed.
type Snapshot map[string]PolicyEntry

// Plan is a named snapshot history, the unit persisted by PlanStore
// adapters. Discount and the model are recorded so a stored plan can be
// rendered or extended later without re-reading the input.
type Plan struct {
	ID        string     `json:"id"`
	Discount  float64    `json:"discount"`
	States    []string   `json:"states"`
	Snapshots []Snapshot `json:"snapshots"`
}
