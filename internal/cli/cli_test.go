package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lattice-engine/lattice/internal/cli"
	"github.com/lattice-engine/lattice/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunSolve(t *testing.T) {
	path := writeModel(t, "S1 0 (a S1 1.0) (b S2 1.0)\nS2 10\n")

	var out bytes.Buffer
	err := cli.RunSolve(&out, path, "0.9", cli.SolveOptions{Iterations: 2})
	require.NoError(t, err)

	assert.Equal(t,
		"After iteration 1: (S1 None 0.0000) (S2 None 10.0000)\n"+
			"After iteration 2: (S1 b 9.0000) (S2 None 10.0000)\n",
		out.String())
}

func TestRunSolve_InvalidDiscount(t *testing.T) {
	path := writeModel(t, "S1 0\n")

	var out bytes.Buffer
	for _, arg := range []string{"2", "-0.5", "abc"} {
		err := cli.RunSolve(&out, path, arg, cli.SolveOptions{})
		assert.ErrorIs(t, err, domain.ErrInvalidDiscount, "discount %q", arg)
	}
}

func TestRunSolve_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := cli.RunSolve(&out, filepath.Join(t.TempDir(), "missing.txt"), "0.9", cli.SolveOptions{})
	assert.Error(t, err)
}

func TestParseDiscount(t *testing.T) {
	d, err := cli.ParseDiscount("0.85")
	require.NoError(t, err)
	assert.Equal(t, 0.85, d)

	_, err = cli.ParseDiscount("almost-one")
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)
}

func TestRunValidate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		path := writeModel(t, "S1 0 (a S2 1.0)\nS2 10\n")
		var out bytes.Buffer
		require.NoError(t, cli.RunValidate(&out, path))
		assert.Contains(t, out.String(), "Model OK: 2 states")
	})

	t.Run("unknown destination", func(t *testing.T) {
		path := writeModel(t, "S1 0 (a ghost 1.0)\n")
		var out bytes.Buffer
		err := cli.RunValidate(&out, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})
}

func TestRunGraph(t *testing.T) {
	path := writeModel(t, "S1 0 (a S1 1.0) (b S2 1.0)\nS2 10\n")

	t.Run("plain", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, cli.RunGraph(&out, path, cli.GraphOptions{}))
		assert.Contains(t, out.String(), "graph TD")
		assert.NotContains(t, out.String(), "==>")
	})

	t.Run("with policy overlay", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, cli.RunGraph(&out, path, cli.GraphOptions{Discount: "0.9", Iterations: 2}))
		assert.Contains(t, out.String(), "==>")
	})
}

func TestLoadServeConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := cli.LoadServeConfig("")
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "memory", cfg.Store.Backend)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lattice.yaml")
		content := "addr: \":9090\"\nstore:\n  backend: redis\n  redis:\n    addr: \"localhost:6379\"\n    ttl: \"24h\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := cli.LoadServeConfig(path)
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "redis", cfg.Store.Backend)
		assert.Equal(t, "localhost:6379", cfg.Store.Redis.Addr)
		assert.Equal(t, "24h", cfg.Store.Redis.TTL)
	})
}

func TestBuildStore(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		store, err := cli.StoreConfig{Backend: "memory"}.BuildStore()
		require.NoError(t, err)
		assert.NotNil(t, store)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := cli.StoreConfig{Backend: "etcd"}.BuildStore()
		assert.Error(t, err)
	})

	t.Run("bad ttl", func(t *testing.T) {
		cfg := cli.StoreConfig{Backend: "redis"}
		cfg.Redis.TTL = "soon"
		_, err := cfg.BuildStore()
		assert.Error(t, err)
	})
}
