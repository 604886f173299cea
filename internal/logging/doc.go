// Package logging assembles structured slog loggers and formatting helpers
// used by the scanner and CLI.
//
// It owns the console and JSON handlers, level parsing, and optional
// duplication of every record into a JSON log file. Helpers such as
// NewComponentLogger and WarnWithContext keep field names consistent so log
// lines from the locator, extractor, and report writer share one shape. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
//
// Loggers are always passed in explicitly; nothing here installs a process
// wide default.
package logging
