package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("package p\n"), 0o644))
}

func TestSources_DirectoryAndFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.exgo"))
	writeFile(t, filepath.Join(root, "a.exgo"))
	writeFile(t, filepath.Join(root, "c.go"))
	writeFile(t, filepath.Join(root, "sub", "d.exgo"))

	files, err := Sources([]string{root}, ".exgo")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.exgo"),
		filepath.Join(root, "b.exgo"),
	}, files)

	files, err = Sources([]string{filepath.Join(root, "sub", "d.exgo"), root, filepath.Join(root, "a.exgo")}, ".exgo")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.exgo"),
		filepath.Join(root, "b.exgo"),
		filepath.Join(root, "sub", "d.exgo"),
	}, files)
}

func TestSources_Recursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.exgo"))
	writeFile(t, filepath.Join(root, "x", "y", "b.exgo"))
	writeFile(t, filepath.Join(root, "testdata", "skip.exgo"))
	writeFile(t, filepath.Join(root, "_hidden", "skip.exgo"))
	writeFile(t, filepath.Join(root, ".git", "skip.exgo"))

	files, err := Sources([]string{root + "/..."}, ".exgo")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.exgo"),
		filepath.Join(root, "x", "y", "b.exgo"),
	}, files)
}

func TestSources_CustomExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.exgo"))
	writeFile(t, filepath.Join(root, "a.gox"))

	files, err := Sources([]string{root}, ".gox")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.gox")}, files)
}

func TestSources_PackagePattern(t *testing.T) {
	files, err := Sources([]string{"exclusive/examples/basic"}, ".exgo")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		assert.Equal(t, ".exgo", filepath.Ext(f))
		assert.Equal(t, "basic", filepath.Base(filepath.Dir(f)))
	}
}
