/*
Package lattice is a finite-horizon value-iteration engine for discrete
Markov Decision Processes (MDPs).

It computes, for each requested iteration count, the best action per
state and the corresponding expected discounted value, memoizing every
earlier iteration so the policy history only ever grows incrementally.

# Concept

Lattice treats the MDP as an immutable state model (rewards plus
stochastic action tables) driven by a single engine that owns the
discount factor and an append-only list of policy snapshots. Snapshot 0
is the base case (no lookahead, value = reward); snapshot i applies one
Bellman backup to snapshot i-1. This Hexagonal Architecture keeps the
iteration core pure: model sources and plan storage are adapters behind
ports.

# Key Features

  - Deterministic Selection: ties between actions always resolve to the first in input order.
  - Incremental History: extending to a larger horizon computes only the missing suffix.
  - Atomic Extension: a failed extension leaves the cached history untouched.
  - Strict Contracts: discount range and destination states are validated, never guessed.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/lattice-engine/lattice"
	)

	func main() {
		// Initialize the engine from a flat model file.
		eng, err := lattice.New("./mdp.txt", 0.9)
		if err != nil {
			log.Fatal(err)
		}

		// Extend the policy history to 20 iterations.
		if err := eng.Solve(20); err != nil {
			log.Fatal(err)
		}

		// Print one line per iteration.
		fmt.Println(eng.RenderAll())
	}
*/
package lattice
