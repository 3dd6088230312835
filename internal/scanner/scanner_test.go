package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsrv/docsrv/internal/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanFindsNestedFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "index.html"), "<html></html>")
	writeFile(t, filepath.Join(root, "crate", "details.html"), "details")
	writeFile(t, filepath.Join(root, "crate", "builds", "log.html"), "log")

	files, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, files, 3)

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"crate/builds/log.html", "crate/details.html", "index.html"}, names)
}

func TestScanLogicalNamesUseForwardSlashes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "b", "c.tmpl"), "x")

	files, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, files, 1)

	// The logical name is platform-independent even though Path is not.
	assert.Equal(t, "a/b/c.tmpl", files[0].Name)
	assert.True(t, filepath.IsAbs(files[0].Path))
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.True(t, errors.IsScanError(err))
}

func TestScanIsDeterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "z.html"), "z")
	writeFile(t, filepath.Join(root, "a.html"), "a")
	writeFile(t, filepath.Join(root, "m", "n.html"), "n")

	first, err := Scan(root)
	require.NoError(t, err)
	second, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScanEmptyRoot(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}
