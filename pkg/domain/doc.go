/*
Package domain contains the core domain models for the Lattice engine.

It defines the fundamental entities of a finite Markov Decision Process,
such as StateModels, Actions, and policy Snapshots. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - StateModel: Represents one MDP state (reward + stochastic action table).
  - Model: The ordered collection of all states consulted by the engine.
  - Snapshot: The policy-and-value assignment for all states at one iteration.
  - Plan: A named snapshot history, the unit handled by PlanStore adapters.
*/
package domain
