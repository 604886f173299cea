package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFiles creates each slash-separated name under root with the given
// content, creating parent directories as needed.
func WriteFiles(t testing.TB, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		WriteBytes(t, filepath.Join(root, filepath.FromSlash(name)), []byte(content))
	}
}

// WriteCorpus writes files into a fresh temp directory and returns its path.
func WriteCorpus(t testing.TB, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	WriteFiles(t, root, files)
	return root
}

// WriteBytes writes raw data to path, for fixtures such as invalid UTF-8.
func WriteBytes(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
