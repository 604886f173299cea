// Package dupdetect finds paragraphs shared by two or more text files.
//
// The detector runs a fixed pipeline over one scan root: locate candidate
// files, extract their paragraphs, derive a grouping key for each paragraph
// from the selected MatchType, and record which files produce each key. Keys
// whose file set reaches the threshold form the Report, with file lists
// sorted ascending.
//
// Argument problems (unknown match types, the reserved fuzzy mode, a negative
// threshold) are returned before any file is touched. A missing root and
// unreadable files are logged and absorbed so a partial directory still
// yields a report.
package dupdetect
