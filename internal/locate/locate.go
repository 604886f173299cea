// Package locate enumerates candidate text files beneath a scan root.
package locate

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"

	"paradup/internal/failures"
)

// DefaultExtensions is the extension filter applied when none is configured.
var DefaultExtensions = []string{".txt"}

// Locate walks root recursively and returns every regular file whose
// extension matches one of exts (case-insensitive), including symlinks to
// regular files. A missing, unreadable, or
// non-directory root yields an empty slice and an error marked
// failures.ErrNotFound. Unreadable subdirectories are skipped.
func Locate(root string, exts []string) ([]string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return []string{}, failures.Wrap(failures.ErrNotFound, "locate", "stat root", "empty directory path", nil)
	}
	info, err := os.Stat(root)
	if err != nil {
		return []string{}, failures.Wrap(failures.ErrNotFound, "locate", "stat root", root, err)
	}
	if !info.IsDir() {
		return []string{}, failures.Wrap(failures.ErrNotFound, "locate", "stat root", root+" is not a directory", nil)
	}

	filter := NormalizeExtensions(exts)

	var (
		mu    sync.Mutex
		found []string
	)
	conf := fastwalk.Config{Follow: false}
	walkErr := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d == nil || !matchesExtension(d.Name(), filter) {
			return nil
		}
		if !isRegularFile(path, d) {
			return nil
		}
		mu.Lock()
		found = append(found, path)
		mu.Unlock()
		return nil
	})
	if walkErr != nil {
		return []string{}, failures.Wrap(failures.ErrNotFound, "locate", "walk root", root, walkErr)
	}

	// Walk order is nondeterministic; sort so logs are stable between runs.
	sort.Strings(found)
	if found == nil {
		found = []string{}
	}
	return found, nil
}

// isRegularFile accepts regular files and symlinks that resolve to one.
// Symlinked directories are never descended into.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// NormalizeExtensions lowercases exts and ensures each carries a leading dot.
// Blank entries are dropped; an empty result falls back to DefaultExtensions.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	seen := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultExtensions...)
	}
	return out
}

func matchesExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, candidate := range exts {
		if ext == candidate {
			return true
		}
	}
	return false
}
