package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. Fuzzy matching is accepted
// here because it is a recognised name; the scan itself rejects it.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	switch c.Scan.Match {
	case "exact", "soft", "fuzzy":
	default:
		return fmt.Errorf("scan.match must be one of exact, soft, or fuzzy (got %q)", c.Scan.Match)
	}
	if c.Scan.Threshold < 1 {
		return errors.New("scan.threshold must be at least 1")
	}
	switch c.Scan.Identity {
	case "relative", "base":
	default:
		return fmt.Errorf("scan.identity must be relative or base (got %q)", c.Scan.Identity)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}
