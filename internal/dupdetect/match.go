package dupdetect

import (
	"fmt"
	"strings"

	"paradup/internal/failures"
	"paradup/internal/textutil"
)

// MatchType selects how paragraphs are compared.
type MatchType string

const (
	// MatchExact groups paragraphs by their raw extracted text.
	MatchExact MatchType = "exact"
	// MatchSoft groups paragraphs ignoring case and whitespace differences.
	MatchSoft MatchType = "soft"
	// MatchFuzzy is reserved. Requesting it fails with failures.ErrNotImplemented.
	MatchFuzzy MatchType = "fuzzy"
)

// DefaultMatchType is used when no match type is given.
const DefaultMatchType = MatchSoft

// MatchTypes lists the recognised match type names.
func MatchTypes() []MatchType {
	return []MatchType{MatchExact, MatchSoft, MatchFuzzy}
}

// ParseMatchType resolves a user supplied match type name. Blank input maps to
// DefaultMatchType; unknown names are marked failures.ErrInvalidArgument.
func ParseMatchType(value string) (MatchType, error) {
	switch MatchType(strings.ToLower(strings.TrimSpace(value))) {
	case "":
		return DefaultMatchType, nil
	case MatchExact:
		return MatchExact, nil
	case MatchSoft:
		return MatchSoft, nil
	case MatchFuzzy:
		return MatchFuzzy, nil
	default:
		return "", failures.Wrap(failures.ErrInvalidArgument, "match", "parse match type",
			fmt.Sprintf("unsupported value %q (want exact, soft, or fuzzy)", value), nil)
	}
}

// Validate reports whether m can drive a scan.
func (m MatchType) Validate() error {
	switch m {
	case MatchExact, MatchSoft:
		return nil
	case MatchFuzzy:
		return failures.Wrap(failures.ErrNotImplemented, "match", "validate match type", "fuzzy matching is not implemented", nil)
	default:
		return failures.Wrap(failures.ErrInvalidArgument, "match", "validate match type",
			fmt.Sprintf("unsupported value %q", string(m)), nil)
	}
}

// Key derives the grouping key for paragraph under m.
func Key(paragraph string, m MatchType) (string, error) {
	switch m {
	case MatchExact:
		return paragraph, nil
	case MatchSoft:
		return textutil.NormalizeParagraph(paragraph), nil
	default:
		return "", m.Validate()
	}
}
