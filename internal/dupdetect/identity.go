package dupdetect

import (
	"fmt"
	"path/filepath"
	"strings"

	"paradup/internal/failures"
)

// Identity selects how files are named in a report.
type Identity string

const (
	// IdentityRelative names files by their slash-separated path relative to
	// the scan root. Files directly under the root keep their base name.
	IdentityRelative Identity = "relative"
	// IdentityBase names files by base name only. Equal base names in
	// different subdirectories collapse into one identifier.
	IdentityBase Identity = "base"
)

// ParseIdentity resolves an identity mode name; blank input maps to
// IdentityRelative.
func ParseIdentity(value string) (Identity, error) {
	switch Identity(strings.ToLower(strings.TrimSpace(value))) {
	case "", IdentityRelative:
		return IdentityRelative, nil
	case IdentityBase:
		return IdentityBase, nil
	default:
		return "", failures.Wrap(failures.ErrInvalidArgument, "identity", "parse identity",
			fmt.Sprintf("unsupported value %q (want relative or base)", value), nil)
	}
}

// FileID returns the report identifier for path found under root.
func FileID(root, path string, identity Identity) string {
	if identity == IdentityBase {
		return filepath.Base(path)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}
