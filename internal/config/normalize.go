package config

import (
	"fmt"
	"os"
	"strings"

	"paradup/internal/locate"
)

func (c *Config) normalize(overrides Overrides) error {
	c.normalizeScan(overrides)
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

// normalizeScan leaves scan.dir relative; the CLI resolves it against the
// working directory at run time so reports keep short identifiers.
func (c *Config) normalizeScan(overrides Overrides) {
	if value, ok := os.LookupEnv("PARADUP_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Scan.Dir = strings.TrimSpace(value)
	}
	if value := strings.TrimSpace(overrides.Dir); value != "" {
		c.Scan.Dir = value
	}
	c.Scan.Dir = strings.TrimSpace(c.Scan.Dir)
	if c.Scan.Dir == "" {
		c.Scan.Dir = defaultScanDir
	}

	if value, ok := os.LookupEnv("PARADUP_MATCH"); ok && strings.TrimSpace(value) != "" {
		c.Scan.Match = value
	}
	if value := strings.TrimSpace(overrides.Match); value != "" {
		c.Scan.Match = value
	}
	c.Scan.Match = strings.ToLower(strings.TrimSpace(c.Scan.Match))
	if c.Scan.Match == "" {
		c.Scan.Match = defaultMatch
	}

	if c.Scan.Threshold == 0 {
		c.Scan.Threshold = defaultThreshold
	}

	c.Scan.Extensions = locate.NormalizeExtensions(c.Scan.Extensions)

	c.Scan.Identity = strings.ToLower(strings.TrimSpace(c.Scan.Identity))
	if c.Scan.Identity == "" {
		c.Scan.Identity = defaultIdentity
	}
}

func (c *Config) normalizeOutput() error {
	path := strings.TrimSpace(c.Output.Path)
	if path == "" {
		c.Output.Path = ""
		return nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("output.path: %w", err)
	}
	c.Output.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	path := strings.TrimSpace(c.Logging.File)
	if path == "" {
		c.Logging.File = ""
		return nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	c.Logging.File = expanded
	return nil
}
