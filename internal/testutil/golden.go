package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// GoldenFile reads the content of the golden file of the current test.
// The file must exist in directory testdata/ and be named after the test.
func GoldenFile(t *testing.T) []byte {
	return GoldenFileNamed(t, t.Name()+".md")
}

// GoldenFileNamed reads the content of the given golden file.
func GoldenFileNamed(t *testing.T, filename string) []byte {
	path := filepath.Join("testdata", filename)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed reading golden file %s: %v", path, err)
	}
	return b
}

// SetUpDreamHome creates a temporary directory containing a .dream/config file
// with the given content and points $DREAM_HOME to it for the duration of the test.
// An empty content means no config file (= defaults).
func SetUpDreamHome(t *testing.T, configContent string) string {
	dir := t.TempDir()

	dreamDir := filepath.Join(dir, ".dream")
	if err := os.Mkdir(dreamDir, 0755); err != nil {
		t.Fatal(err)
	}
	if configContent != "" {
		if err := os.WriteFile(filepath.Join(dreamDir, "config"), []byte(configContent), 0644); err != nil {
			t.Fatal(err)
		}
	}

	t.Setenv("DREAM_HOME", dir)
	return dir
}
