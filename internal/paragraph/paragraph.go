// Package paragraph reads text files and splits them into blank-line
// delimited paragraphs.
package paragraph

import (
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"paradup/internal/failures"
)

// separatorPattern matches a blank-line run: newline, optional whitespace
// (which may include further newlines), newline.
var separatorPattern = regexp.MustCompile(`\n[\s\v\p{Z}\x{85}]*\n`)

// newlineReplacer folds CRLF and lone CR line endings into LF.
var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Split trims the document and splits it into raw paragraphs. Line endings
// are folded to LF first; otherwise paragraph text is returned as-is apart
// from the document-level trim, so interior newlines and irregular spacing
// survive.
func Split(content string) []string {
	content = strings.TrimSpace(newlineReplacer.Replace(content))
	if content == "" {
		return nil
	}
	return separatorPattern.Split(content, -1)
}

// Extract reads the file at path and returns its paragraphs. Read failures and
// content that is not valid UTF-8 are marked failures.ErrIO.
func Extract(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, failures.Wrap(failures.ErrIO, "extract", "read file", path, err)
	}
	if !utf8.Valid(data) {
		return nil, failures.Wrap(failures.ErrIO, "extract", "decode file", path+": content is not valid UTF-8", nil)
	}
	return Split(string(data)), nil
}
