package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"paradup/internal/dupdetect"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := statusKindLabel(kind)
	if message != "" {
		statusText = fmt.Sprintf("[%s] %s", statusText, message)
	} else {
		statusText = fmt.Sprintf("[%s]", statusText)
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

// summaryLines describes scan statistics: files located, files skipped, and
// duplicates found.
func summaryLines(result dupdetect.Result, colorize bool) []string {
	filesKind := statusOK
	if result.NoFiles() {
		filesKind = statusWarn
	}
	failedKind := statusOK
	if result.FilesFailed > 0 {
		failedKind = statusError
	}
	dupKind := statusInfo
	if result.Duplicates.Len() > 0 {
		dupKind = statusWarn
	}
	return []string{
		renderStatusLine("Files scanned", filesKind, fmt.Sprintf("%d of %d", result.FilesRead, result.FilesFound), colorize),
		renderStatusLine("Files skipped", failedKind, strconv.Itoa(result.FilesFailed), colorize),
		renderStatusLine("Paragraphs", statusInfo, fmt.Sprintf("%d (%d unique)", result.Paragraphs, result.UniqueKeys), colorize),
		renderStatusLine("Duplicates", dupKind, fmt.Sprintf("%d (match %s, threshold %d)", result.Duplicates.Len(), result.MatchType, result.Threshold), colorize),
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
