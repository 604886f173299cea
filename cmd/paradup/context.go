package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"paradup/internal/config"
	"paradup/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	// overrides must be set before the first ensureConfig call.
	overrides config.Overrides

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.LoadWithOverrides(path, c.overrides)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// newLogger builds the run logger on the command's stderr, applying the
// --log-level and --log-format overrides and tagging every record with a
// fresh run ID.
func (c *commandContext) newLogger(cmd *cobra.Command) (*slog.Logger, func() error, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	opts := logging.Options{
		Level:    cfg.Logging.Level,
		Format:   cfg.Logging.Format,
		FilePath: cfg.Logging.File,
		Writer:   cmd.ErrOrStderr(),
	}
	if value := flagValue(c.logLevelFlag); value != "" {
		opts.Level = value
	}
	if value := flagValue(c.logFormatFlag); value != "" {
		opts.Format = value
	}
	logger, closeFn, err := logging.New(opts)
	if err != nil {
		return nil, nil, err
	}
	return logger.With(logging.String(logging.FieldRunID, uuid.NewString())), closeFn, nil
}

// fallbackLogger is used when configuration cannot be loaded. It honours the
// logging flags and otherwise logs at info level on the console.
func (c *commandContext) fallbackLogger(cmd *cobra.Command) *slog.Logger {
	logger, _, err := logging.New(logging.Options{
		Level:  flagValue(c.logLevelFlag),
		Format: flagValue(c.logFormatFlag),
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		logger, _, _ = logging.New(logging.Options{Writer: cmd.ErrOrStderr()})
	}
	return logger.With(logging.String(logging.FieldRunID, uuid.NewString()))
}

func flagValue(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
