package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"paradup/internal/dupdetect"
)

// ErrLocked is returned when another process is writing the same report.
var ErrLocked = errors.New("report is locked by another process")

// Encode writes r as indented JSON. A nil report encodes as an empty object.
func Encode(w io.Writer, r dupdetect.Report) error {
	if r == nil {
		r = dupdetect.Report{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

// Marshal returns the bytes Encode would write.
func Marshal(r dupdetect.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile atomically replaces path with the JSON encoding of r. The write
// happens under an advisory lock on path+".lock"; if the lock is held
// elsewhere ErrLocked is returned and path is left untouched. The lock file
// is left in place after the write.
func WriteFile(path string, r dupdetect.Report) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("report path is empty")
	}
	payload, err := Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report directory %q: %w", dir, err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock report %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	return writeAtomic(path, payload)
}

func writeAtomic(dest string, payload []byte) error {
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".paradup-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp report: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(payload); err != nil {
		cleanup()
		return fmt.Errorf("write temp report: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp report: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync temp report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp report: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace report %s: %w", dest, err)
	}
	return nil
}
