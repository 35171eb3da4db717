package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldenFile(t *testing.T) {
	content := GoldenFile(t)
	assert.Equal(t, "# TestGoldenFile\n\nSweet dreams!\n", string(content))
}

func TestGoldenFileNamed(t *testing.T) {
	content := GoldenFileNamed(t, "TestGoldenFileNamedWithAnotherName.md")
	assert.Equal(t, "# TestGoldenFileNamedWithAnotherName\n\nNightmares!\n", string(content))
}

func TestSetUpDreamHome(t *testing.T) {
	dir := SetUpDreamHome(t, "[journal]\ndir=\"dreams\"\n")

	assert.Equal(t, dir, os.Getenv("DREAM_HOME"))
	content, err := os.ReadFile(filepath.Join(dir, ".dream", "config"))
	require.NoError(t, err)
	assert.Equal(t, "[journal]\ndir=\"dreams\"\n", string(content))

	dir = SetUpDreamHome(t, "")
	require.DirExists(t, filepath.Join(dir, ".dream"))
	assert.NoFileExists(t, filepath.Join(dir, ".dream", "config"))
}
