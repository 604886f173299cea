package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"paradup/internal/config"
	"paradup/internal/dupdetect"
	"paradup/internal/failures"
	"paradup/internal/logging"
	"paradup/internal/report"
)

type scanOptions struct {
	dir        string
	match      string
	output     string
	threshold  int
	identity   string
	extensions []string
	jsonOut    bool
	tableOut   bool
	summary    bool
}

// scanSettings is the fully resolved scan request after config and flags
// are merged.
type scanSettings struct {
	dir        string
	match      dupdetect.MatchType
	output     string
	threshold  int
	identity   dupdetect.Identity
	extensions []string
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	opts := &scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Report paragraphs shared by two or more files",
		Long: "Scan a directory recursively for text files, split each into blank-line separated\n" +
			"paragraphs, and report every paragraph found in at least --threshold files.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, ctx, opts)
		},
	}
	bindScanFlags(cmd, opts)
	return cmd
}

func bindScanFlags(cmd *cobra.Command, opts *scanOptions) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.dir, "dir", "d", "", "Directory that contains the text files (default from config, data/)")
	flags.StringVarP(&opts.match, "match", "m", "", fmt.Sprintf("Match type: %s (default %s)", matchTypeList(), dupdetect.DefaultMatchType))
	flags.StringVarP(&opts.output, "output", "o", "", "Optional path to save results as JSON (a <path>.lock file is kept beside it)")
	flags.IntVarP(&opts.threshold, "threshold", "t", 0, "Minimum number of files a paragraph must appear in (default 2)")
	flags.StringVar(&opts.identity, "identity", "", "File naming in reports: relative or base")
	flags.StringSliceVar(&opts.extensions, "ext", nil, "File extensions to scan (repeatable, default .txt)")
	flags.BoolVar(&opts.jsonOut, "json", false, "Print the report as JSON instead of text")
	flags.BoolVar(&opts.tableOut, "table", false, "Render duplicates as a table")
	flags.BoolVar(&opts.summary, "summary", false, "Print scan statistics after the report")
	cmd.MarkFlagsMutuallyExclusive("json", "table")
}

func matchTypeList() string {
	types := dupdetect.MatchTypes()
	names := make([]string, 0, len(types))
	for _, mt := range types {
		names = append(names, string(mt))
	}
	return strings.Join(names, ", ")
}

// resolve merges explicitly set flags over the loaded configuration and
// validates the names before any file is opened.
func (o *scanOptions) resolve(cmd *cobra.Command, cfg *config.Config) (scanSettings, error) {
	settings := scanSettings{
		dir:        cfg.Scan.Dir,
		output:     cfg.Output.Path,
		threshold:  cfg.Scan.Threshold,
		extensions: cfg.Scan.Extensions,
	}
	match := cfg.Scan.Match
	identity := cfg.Scan.Identity

	flags := cmd.Flags()
	if flags.Changed("dir") {
		settings.dir = strings.TrimSpace(o.dir)
	}
	if flags.Changed("match") {
		match = o.match
	}
	if flags.Changed("output") {
		settings.output = strings.TrimSpace(o.output)
	}
	if flags.Changed("threshold") {
		if o.threshold < 1 {
			return scanSettings{}, failures.Wrap(failures.ErrInvalidArgument, "scan", "parse flags",
				fmt.Sprintf("--threshold must be at least 1, got %d", o.threshold), nil)
		}
		settings.threshold = o.threshold
	}
	if flags.Changed("identity") {
		identity = o.identity
	}
	if flags.Changed("ext") {
		settings.extensions = o.extensions
	}

	var err error
	if settings.match, err = dupdetect.ParseMatchType(match); err != nil {
		return scanSettings{}, err
	}
	if settings.identity, err = dupdetect.ParseIdentity(identity); err != nil {
		return scanSettings{}, err
	}
	if settings.output != "" {
		if settings.output, err = config.ExpandPath(settings.output); err != nil {
			return scanSettings{}, fmt.Errorf("resolve output path: %w", err)
		}
	}
	return settings, nil
}

func runScan(cmd *cobra.Command, ctx *commandContext, opts *scanOptions) error {
	flags := cmd.Flags()
	if flags.Changed("dir") {
		ctx.overrides.Dir = opts.dir
	}
	if flags.Changed("match") {
		ctx.overrides.Match = opts.match
	}
	cfg, err := ctx.ensureConfig()
	if err != nil {
		logScanFailure(logging.NewComponentLogger(ctx.fallbackLogger(cmd), "cli"), "configuration rejected", err)
		return err
	}
	logger, closeLog, err := ctx.newLogger(cmd)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeLog()
	}()
	logger = logging.NewComponentLogger(logger, "cli")

	settings, err := opts.resolve(cmd, cfg)
	if err != nil {
		logScanFailure(logger, "invalid scan arguments", err)
		return err
	}
	logger.Debug("scan requested",
		logging.String("dir", settings.dir),
		logging.String("match", string(settings.match)),
		logging.Int("threshold", settings.threshold),
		logging.String("identity", string(settings.identity)),
		logging.String("config", ctx.configPath),
		logging.Bool("config_found", ctx.configSeen),
	)

	result, err := dupdetect.Find(dupdetect.Options{
		Root:       settings.dir,
		MatchType:  settings.match,
		Threshold:  settings.threshold,
		Extensions: settings.extensions,
		Identity:   settings.identity,
		Logger:     logger,
	})
	if err != nil {
		logScanFailure(logger, "duplicate scan failed", err)
		return fmt.Errorf("detect duplicate paragraphs: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.jsonOut:
		err = writeJSON(cmd, result.Duplicates)
	case opts.tableOut:
		err = writeDuplicateTable(out, result)
	default:
		err = report.WriteText(out, result)
	}
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if settings.output != "" {
		if err := report.WriteFile(settings.output, result.Duplicates); err != nil {
			logScanFailure(logger, "report write failed", err)
			return fmt.Errorf("write report: %w", err)
		}
		notice := out
		if opts.jsonOut {
			notice = cmd.ErrOrStderr()
		}
		fmt.Fprintf(notice, "Duplicates written to %s\n", settings.output)
	}

	if opts.summary {
		for _, line := range summaryLines(result, shouldColorize(out)) {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

func logScanFailure(logger *slog.Logger, msg string, err error) {
	hint := "re-run with --log-level debug for details"
	switch {
	case errors.Is(err, failures.ErrNotImplemented):
		hint = "fuzzy matching is reserved; use --match soft or --match exact"
	case errors.Is(err, failures.ErrInvalidArgument):
		hint = "check --match, --threshold, PARADUP_MATCH and the config file"
	}
	logging.ErrorWithContext(logger, msg, "scan_failed",
		logging.Error(err),
		logging.String(logging.FieldErrorKind, failures.Kind(err)),
		logging.String(logging.FieldErrorHint, hint),
	)
}
