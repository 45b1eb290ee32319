/*
Package ports defines the driven ports (interfaces) for the Lattice engine.

These interfaces decouple the core logic from external implementations,
allowing the engine to work with various model sources and plan storage
backends.

# Key Interfaces

  - ModelLoader: Responsible for loading the MDP state collection (e.g., from a flat file or memory).
  - PlanStore: Responsible for persisting and loading computed policy Plans.
*/
package ports
