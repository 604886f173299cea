package config

import "paradup/internal/locate"

const (
	defaultScanDir   = "data/"
	defaultMatch     = "soft"
	defaultThreshold = 2
	defaultIdentity  = "relative"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Dir:        defaultScanDir,
			Match:      defaultMatch,
			Threshold:  defaultThreshold,
			Extensions: append([]string(nil), locate.DefaultExtensions...),
			Identity:   defaultIdentity,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
