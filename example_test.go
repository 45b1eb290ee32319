package lattice_test

import (
	"fmt"
	"log"

	"github.com/lattice-engine/lattice"
	"github.com/lattice-engine/lattice/pkg/domain"
)

// This example builds the model in memory instead of reading a file.
// This is useful for testing, embedded scenarios, or when you don't want
// to rely on the file system.
func Example() {
	s1, err := domain.NewStateModel("S1", 0, []string{"a", "S1", "1.0", "b", "S2", "1.0"})
	if err != nil {
		log.Fatal(err)
	}
	s2, err := domain.NewStateModel("S2", 10, nil)
	if err != nil {
		log.Fatal(err)
	}

	eng, err := lattice.New("", 0.9, lattice.WithModel(domain.NewModel(s1, s2)))
	if err != nil {
		log.Fatal(err)
	}

	if err := eng.Solve(2); err != nil {
		log.Fatal(err)
	}

	fmt.Println(eng.RenderAll())
	// Output:
	// After iteration 1: (S1 None 0.0000) (S2 None 10.0000)
	// After iteration 2: (S1 b 9.0000) (S2 None 10.0000)
}
