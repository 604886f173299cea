// Package config loads, normalizes, and validates paradup configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// PARADUP_DIR. The Config type centralizes every knob the CLI needs so scan
// defaults, report output, and logging are resolved in one pass.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical names, and clear validation errors.
package config
