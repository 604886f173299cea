package report

import (
	"fmt"
	"io"
	"strings"

	"paradup/internal/dupdetect"
)

const (
	noDuplicatesMessage = "No duplicates found!"
	paragraphPrefix     = "Duplicate Paragraph: "
	locationsPrefix     = "-> Found in: "
)

// WriteText prints each duplicate as a two-line block in key order. An empty
// scan root is reported before the no-duplicates message.
func WriteText(w io.Writer, result dupdetect.Result) error {
	if result.NoFiles() {
		if _, err := fmt.Fprintf(w, "No files found in %s\n", result.Root); err != nil {
			return err
		}
	}
	if result.Duplicates.Len() == 0 {
		_, err := fmt.Fprintln(w, noDuplicatesMessage)
		return err
	}
	for _, key := range result.Duplicates.Keys() {
		files := result.Duplicates[key]
		if _, err := fmt.Fprintf(w, "%s%s\n%s%s\n", paragraphPrefix, key, locationsPrefix, strings.Join(files, ", ")); err != nil {
			return err
		}
	}
	return nil
}
