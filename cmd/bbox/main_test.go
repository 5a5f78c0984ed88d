package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gobbox/internal/config"
	"github.com/philipparndt/gobbox/pkg/openscad"
)

// resetFlags restores every flag of cmd and its subcommands to its default
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)
	cfg = config.Default()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTriangleSTL(t *testing.T, name string, dx float64) string {
	t.Helper()

	content := fmt.Sprintf(`solid %[1]s
  facet normal 0 0 1
    outer loop
      vertex %[2]g 0 0
      vertex %[3]g 4 0
      vertex %[2]g 0 6
    endloop
  endfacet
endsolid %[1]s
`, name, dx, dx+2)

	path := filepath.Join(t.TempDir(), name+".stl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLerpCommand(t *testing.T) {
	out, err := execute(t, "lerp", "--min", "0,0,0", "--max", "2,4,6", "0.5,0.5,1")
	require.NoError(t, err)

	assert.Contains(t, out, "Box: [(0, 0, 0), (2, 4, 6)]")
	assert.Contains(t, out, "Result: (1, 2, 6)")
}

func TestOffsetCommand2D(t *testing.T) {
	out, err := execute(t, "offset", "--min", "2,4", "--max", "0,0", "1,1")
	require.NoError(t, err)

	assert.Contains(t, out, "Box: [(0, 0), (2, 4)]")
	assert.Contains(t, out, "Result: (0.5, 0.25)")
}

func TestLerpCommandRejectsMismatchedVectors(t *testing.T) {
	_, err := execute(t, "lerp", "--min", "0,0", "--max", "1,1,1", "0.5,0.5")
	assert.Error(t, err)

	_, err = execute(t, "lerp", "--min", "0,0", "--max", "1,x", "0.5,0.5")
	assert.Error(t, err)
}

func TestInfoCommand(t *testing.T) {
	path := writeTriangleSTL(t, "part", 0)

	out, err := execute(t, "info", path)
	require.NoError(t, err)

	assert.Contains(t, out, "[(0, 0, 0), (2, 4, 6)]\n")
	assert.Contains(t, out, "Longest axis: Z")
	assert.Contains(t, out, "Volume: 48.000000")
	assert.Contains(t, out, "Triangles: 1")
}

func TestInfoCommandUnsupportedFile(t *testing.T) {
	_, err := execute(t, "info", "model.obj")
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestInfoCommandWithoutOpenSCAD(t *testing.T) {
	old := openscad.Binary
	openscad.Binary = "openscad-binary-that-does-not-exist"
	defer func() { openscad.Binary = old }()

	path := filepath.Join(t.TempDir(), "part.scad")
	require.NoError(t, os.WriteFile(path, []byte("cube(1);\n"), 0o644))

	_, err := execute(t, "info", path)
	assert.ErrorContains(t, err, "not found in PATH")
}

func TestWatchedFiles(t *testing.T) {
	files, err := watchedFiles("model.stl")
	require.NoError(t, err)
	assert.Equal(t, []string{"model.stl"}, files)

	dir := t.TempDir()
	scadFile := filepath.Join(dir, "main.scad")
	require.NoError(t, os.WriteFile(scadFile, []byte("include <params.scad>\ncube(size);\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "params.scad"), []byte("size = 3;\n"), 0o644))

	files, err = watchedFiles(scadFile)
	require.NoError(t, err)
	assert.Equal(t, []string{scadFile, filepath.Join(dir, "params.scad")}, files)
}

func TestOverlapCommand(t *testing.T) {
	a := writeTriangleSTL(t, "a", 0)
	b := writeTriangleSTL(t, "b", 2)

	out, err := execute(t, "overlap", a, b, "--tolerance", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "Overlap: true")
	assert.Contains(t, out, "Overlap (tolerance 0.000000): false")
	assert.Contains(t, out, "Union: [(0, 0, 0), (4, 4, 6)]")
}

func TestPrimitiveCommand(t *testing.T) {
	out, err := execute(t, "primitive", "box", "--size", "2,4,6")
	require.NoError(t, err)

	assert.Contains(t, out, "[(-1, -2, -3), (1, 2, 3)]\n")

	_, err = execute(t, "primitive", "torus")
	assert.Error(t, err)
}

func TestConfigFlag(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bbox.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("precision: 1\nunit: mm\n"), 0o644))
	path := writeTriangleSTL(t, "part", 0)

	out, err := execute(t, "--config", cfgPath, "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Width (X): 2.0 mm")

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version")
	assert.Error(t, err)
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	a := writeTriangleSTL(t, "a", 0)
	b := writeTriangleSTL(t, "b", 1)

	out, err := execute(t, "overlap", a, b, "--tolerance", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Overlap (tolerance 0.500000): true")

	out, err = execute(t, "overlap", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "Overlap (tolerance 0.000000): true")

	cfgPath := filepath.Join(t.TempDir(), "bbox.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("precision: 1\nunit: mm\n"), 0o644))
	_, err = execute(t, "--config", cfgPath, "info", a)
	require.NoError(t, err)

	out, err = execute(t, "info", a)
	require.NoError(t, err)
	assert.Contains(t, out, "Width (X): 2.000000 units")
}
