package file_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lattice-engine/lattice/internal/adapters/file"
	"github.com/lattice-engine/lattice/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `s1 5 (a1 s1 0.3) (a1 s2 0.7) (a2 s2 1.0)

s2 -1 (a1 s1 1.0)
s3 10
`

func TestParse(t *testing.T) {
	model, err := file.Parse(context.Background(), strings.NewReader(sampleInput))
	require.NoError(t, err)

	require.Equal(t, 3, model.Len())
	states := model.States()
	assert.Equal(t, []string{"s1", "s2", "s3"}, []string{states[0].Name, states[1].Name, states[2].Name})

	s1 := states[0]
	assert.Equal(t, 5.0, s1.Reward)
	require.Len(t, s1.Actions, 2)
	assert.Equal(t, "a1", s1.Actions[0].Name)
	assert.Equal(t, []domain.Outcome{{To: "s1", Prob: 0.3}, {To: "s2", Prob: 0.7}}, s1.Actions[0].Outcomes)
	assert.Equal(t, "a2", s1.Actions[1].Name)

	// Sink state: no actions at all.
	assert.Empty(t, states[2].Actions)
}

func TestParse_Errors(t *testing.T) {
	t.Run("missing reward", func(t *testing.T) {
		_, err := file.Parse(context.Background(), strings.NewReader("s1\n"))
		assert.Error(t, err)
	})

	t.Run("unparseable reward", func(t *testing.T) {
		_, err := file.Parse(context.Background(), strings.NewReader("s1 ten\n"))
		assert.Error(t, err)
	})

	t.Run("dangling triple tokens", func(t *testing.T) {
		_, err := file.Parse(context.Background(), strings.NewReader("s1 1 (a1 s2\n"))
		assert.ErrorIs(t, err, domain.ErrMalformedTriple)
	})

	t.Run("unparseable probability", func(t *testing.T) {
		_, err := file.Parse(context.Background(), strings.NewReader("s1 1 (a1 s2 maybe)\n"))
		assert.ErrorIs(t, err, domain.ErrMalformedTriple)
	})
}

func TestParse_RepeatedStateLineReplacesInPlace(t *testing.T) {
	input := "s1 1\ns2 2\ns1 9\n"
	model, err := file.Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 2, model.Len())
	assert.Equal(t, "s1", model.States()[0].Name)
	assert.Equal(t, 9.0, model.States()[0].Reward)
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleInput), 0o644))

	model, err := file.NewLoader(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, model.Len())

	_, err = file.NewLoader(filepath.Join(dir, "missing.txt")).Load(context.Background())
	assert.Error(t, err)
}
