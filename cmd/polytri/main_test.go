package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytri/polygon"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestCountCmd(t *testing.T) {
	out, err := run(t, "count", "7", "0", "1", "4")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, err = run(t, "count", "7", "4", "1", "0", "--no-cache")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out, "vertex order and cache toggle do not matter")
}

func TestCountCmd_Errors(t *testing.T) {
	_, err := run(t, "count", "7", "x", "1", "4")
	assert.ErrorContains(t, err, `invalid V1 "x"`)
	_, err = run(t, "count", "7", "0", "x", "4")
	assert.ErrorContains(t, err, `invalid V2 "x"`)

	_, err = run(t, "count", "6", "0", "2", "2")
	assert.ErrorIs(t, err, polygon.ErrDuplicateVertex)

	_, err = run(t, "count", "6", "0", "2")
	assert.Error(t, err, "needs four arguments")
}

func TestAllCmd(t *testing.T) {
	out, err := run(t, "all", "6")
	require.NoError(t, err)
	assert.Equal(t, "(0,2,4)\t1\ntotal\t2\n", out)

	out, err = run(t, "all", "6", "--zeros")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 11, "10 triangles and the total")
	assert.Equal(t, "(0,1,2)\t0", lines[0])
}

func TestAllCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polytri.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 5\ninclude_cache: false\nlogging:\n  level: warn\n"), 0o644))

	out, err := run(t, "all", "--config", path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "total\t5\n"), out)
}

func TestAllCmd_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polytri.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 1\n"), 0o644))

	_, err := run(t, "all", "--config", path)
	assert.Error(t, err)
}

func TestBenchCmd(t *testing.T) {
	out, err := run(t, "bench", "7", "--samples", "2", "--cache-capacity", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "n=7 samples=2 total=42")
	assert.Contains(t, out, "cached\t")
	assert.Contains(t, out, "uncached\t")
}
