package memory_test

import (
	"testing"

	"github.com/lattice-engine/lattice/pkg/adapters/memory"
	"github.com/lattice-engine/lattice/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunPlanStoreContract(t, store)
}
