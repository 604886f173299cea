package dupdetect

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"paradup/internal/failures"
	"paradup/internal/locate"
	"paradup/internal/logging"
	"paradup/internal/paragraph"
)

// DefaultThreshold reports paragraphs found in more than one file.
const DefaultThreshold = 2

// Options configures a single scan.
type Options struct {
	Root       string
	MatchType  MatchType
	Threshold  int
	Extensions []string
	Identity   Identity
	Logger     *slog.Logger
}

// Result is the outcome of one scan.
type Result struct {
	Root        string
	MatchType   MatchType
	Threshold   int
	FilesFound  int
	FilesRead   int
	FilesFailed int
	Paragraphs  int
	UniqueKeys  int
	Duplicates  Report
}

// NoFiles reports whether the scan root contained no candidate files.
func (r Result) NoFiles() bool {
	return r.FilesFound == 0
}

// Find scans opts.Root and returns every paragraph key whose file set size is
// at least the threshold. Options are validated before any I/O; a missing
// root or unreadable files are logged and absorbed.
func Find(opts Options) (Result, error) {
	resolved, err := opts.resolve()
	if err != nil {
		return Result{}, err
	}
	logger := logging.NewComponentLogger(opts.Logger, "detector")
	started := time.Now()

	result := Result{
		Root:      resolved.Root,
		MatchType: resolved.MatchType,
		Threshold: resolved.Threshold,
	}

	files, err := locate.Locate(resolved.Root, resolved.Extensions)
	if err != nil {
		if !failures.Contained(err) {
			return Result{}, err
		}
		logging.WarnWithContext(logger, "scan root unavailable", "scan_root_missing",
			logging.String("root", resolved.Root),
			logging.Error(err),
			logging.String(logging.FieldErrorKind, failures.Kind(err)),
			logging.String(logging.FieldErrorHint, "check --dir points at an existing readable directory"),
			logging.String(logging.FieldImpact, "no files scanned"),
		)
	}
	result.FilesFound = len(files)
	if len(files) == 0 {
		logger.Warn("no files found",
			logging.String("root", resolved.Root),
			logging.Any("extensions", resolved.Extensions),
		)
		result.Duplicates = Report{}
		return result, nil
	}
	logger.Debug("files located", logging.Int("count", len(files)))

	occ := make(occurrences)
	for _, path := range files {
		paragraphs, err := paragraph.Extract(path)
		if err != nil {
			if !failures.Contained(err) {
				return Result{}, err
			}
			result.FilesFailed++
			logging.WarnWithContext(logger, "skipping unreadable file", "file_read_failed",
				logging.String("path", path),
				logging.Error(err),
				logging.String(logging.FieldErrorKind, failures.Kind(err)),
				logging.String(logging.FieldErrorHint, "check file permissions and encoding"),
				logging.String(logging.FieldImpact, "file contributes no paragraphs"),
			)
			continue
		}
		result.FilesRead++
		id := FileID(resolved.Root, path, resolved.Identity)
		for _, p := range paragraphs {
			key, err := Key(p, resolved.MatchType)
			if err != nil {
				return Result{}, err
			}
			occ.add(key, id)
			result.Paragraphs++
		}
	}

	result.UniqueKeys = len(occ)
	result.Duplicates = occ.filter(resolved.Threshold)

	if result.Duplicates.Len() == 0 {
		logger.Info("no duplicates found",
			logging.Int("files", result.FilesRead),
			logging.Duration("elapsed", time.Since(started)),
		)
	} else {
		logger.Info("duplicates found",
			logging.Int("duplicates", result.Duplicates.Len()),
			logging.Int("files", result.FilesRead),
			logging.Int("paragraphs", result.Paragraphs),
			logging.Duration("elapsed", time.Since(started)),
		)
	}
	return result, nil
}

func (o Options) resolve() (Options, error) {
	out := o
	// Locate and FileID must see the same root or relative IDs degrade to
	// base names.
	if root := strings.TrimSpace(out.Root); root != "" {
		out.Root = filepath.Clean(root)
	} else {
		out.Root = ""
	}
	if out.MatchType == "" {
		out.MatchType = DefaultMatchType
	}
	if err := out.MatchType.Validate(); err != nil {
		return Options{}, err
	}
	switch {
	case out.Threshold == 0:
		out.Threshold = DefaultThreshold
	case out.Threshold < 0:
		return Options{}, failures.Wrap(failures.ErrInvalidArgument, "scan", "validate threshold",
			fmt.Sprintf("threshold must be at least 1, got %d", out.Threshold), nil)
	}
	identity, err := ParseIdentity(string(out.Identity))
	if err != nil {
		return Options{}, err
	}
	out.Identity = identity
	out.Extensions = locate.NormalizeExtensions(out.Extensions)
	return out, nil
}
