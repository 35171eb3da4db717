package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSize(t *testing.T) {
	dir := t.TempDir()

	knownPath := filepath.Join(dir, "known.md")
	unknownPath := filepath.Join(dir, "unknown.md")

	err := os.WriteFile(knownPath, []byte("Sweet dreams!"), 0644)
	require.NoError(t, err)

	size, err := FileSize(knownPath)
	require.NoError(t, err)
	assert.Equal(t, int64(13), size)

	size, err = FileSize(unknownPath)
	require.Error(t, err)
	assert.Equal(t, int64(0), size)
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()

	err := os.MkdirAll(filepath.Join(dir, "2023"), 0755)
	require.NoError(t, err)
	err = os.MkdirAll(filepath.Join(dir, ".hidden"), 0755)
	require.NoError(t, err)
	filepathA := filepath.Join(dir, "2023/2023-01-02-b.md")
	filepathB := filepath.Join(dir, "2023/2023-01-01-a.md")
	filepathC := filepath.Join(dir, "2023/notes.txt")
	filepathD := filepath.Join(dir, ".hidden/2023-01-03-c.md")

	for _, path := range []string{filepathA, filepathB, filepathC, filepathD} {
		randomTextFile(t, path, 2*KB)
	}

	paths, err := ListFiles(dir, ".md")
	require.NoError(t, err)
	assert.Equal(t, []string{filepathB, filepathA}, paths)

	paths, err = ListFiles(dir, "")
	require.NoError(t, err)
	assert.Len(t, paths, 3)

	paths, err = ListFiles(filepath.Join(dir, "missing"), ".md")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "12 B", HumanSize(12))
	assert.Equal(t, "1.5 KB", HumanSize(1536))
	assert.Equal(t, "2.0 MB", HumanSize(2*MB))
	assert.Equal(t, "1.0 GB", HumanSize(GB))
}

func randomTextFile(t *testing.T, path string, n int) {
	err := os.WriteFile(path, []byte(strings.Repeat("z", n)), 0644)
	require.NoError(t, err)
}
