// Package textutil holds the text normalization shared by the duplicate
// detector and the CLI renderers.
//
// NormalizeParagraph produces the soft-match key of a paragraph: Unicode
// lowercasing followed by collapsing every whitespace run to one space.
// Preview shortens a key for single-line display.
package textutil
