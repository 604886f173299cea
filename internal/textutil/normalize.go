package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// whitespaceRunPattern matches any run of whitespace, newlines and Unicode
// separators included.
var whitespaceRunPattern = regexp.MustCompile(`[\s\v\p{Z}\x{85}]+`)

// NormalizeParagraph lowercases text and collapses every whitespace run to a
// single ASCII space, trimming the ends. Two paragraphs that differ only by
// letter case or spacing normalize to the same value.
func NormalizeParagraph(text string) string {
	lowered := cases.Lower(language.Und).String(text)
	return strings.TrimSpace(CollapseWhitespace(lowered))
}

// CollapseWhitespace replaces each whitespace run in text with one space.
func CollapseWhitespace(text string) string {
	return whitespaceRunPattern.ReplaceAllString(text, " ")
}

// Preview shortens text to at most limit runes for single-line display,
// collapsing whitespace and appending an ellipsis when truncated.
func Preview(text string, limit int) string {
	flat := strings.TrimSpace(CollapseWhitespace(text))
	if limit <= 0 {
		return flat
	}
	runes := []rune(flat)
	if len(runes) <= limit {
		return flat
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
