package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles_AndStale(t *testing.T) {
	srcDir := t.TempDir()

	files := []GeneratedFile{
		{Filename: "a_exclusive.go", Dir: srcDir, Content: []byte("package p\n")},
		{Filename: "b_exclusive.go", Dir: srcDir, Content: []byte("package p\n\nvar b = 1\n")},
	}

	stale, err := Stale(files, "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(srcDir, "a_exclusive.go"),
		filepath.Join(srcDir, "b_exclusive.go"),
	}, stale)

	require.NoError(t, WriteFiles(files, ""))

	stale, err = Stale(files, "")
	require.NoError(t, err)
	assert.Empty(t, stale)

	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "b_exclusive.go"), []byte("package p\n"), 0o644))

	stale, err = Stale(files, "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(srcDir, "b_exclusive.go")}, stale)
}

func TestWriteFiles_OutputDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "out")

	files := []GeneratedFile{{Filename: "a_exclusive.go", Dir: "ignored", Content: []byte("package p\n")}}
	require.NoError(t, WriteFiles(files, outDir))

	b, err := os.ReadFile(filepath.Join(outDir, "a_exclusive.go"))
	require.NoError(t, err)
	assert.Equal(t, "package p\n", string(b))
}

func TestWriteFiles_DuplicateOutputPath(t *testing.T) {
	outDir := t.TempDir()

	files := []GeneratedFile{
		{Filename: "checks_exclusive.go", Dir: "a", Source: "a/checks.exgo", Content: []byte("package a\n")},
		{Filename: "checks_exclusive.go", Dir: "b", Source: "b/checks.exgo", Content: []byte("package b\n")},
	}

	// Next to their sources the two files do not clash.
	paths, err := outputPaths(files, "")
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	err = WriteFiles(files, outDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a/checks.exgo and b/checks.exgo both generate")

	_, serr := os.Stat(filepath.Join(outDir, "checks_exclusive.go"))
	assert.True(t, os.IsNotExist(serr), "nothing may be written when outputs collide")

	_, err = Stale(files, outDir)
	assert.Error(t, err)
}
