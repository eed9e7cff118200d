package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvHome         = "ADDRGEN_HOME"
	EnvListen       = "ADDRGEN_LISTEN"
	EnvLogLevel     = "ADDRGEN_LOG_LEVEL"
	EnvLogFile      = "ADDRGEN_LOG_FILE"
	EnvOutputFormat = "ADDRGEN_OUTPUT_FORMAT"
	EnvVerbose      = "ADDRGEN_VERBOSE"
	EnvRateLimit    = "ADDRGEN_RATE_LIMIT"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvListen)); v != "" {
		cfg.Server.Listen = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}

	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}

	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(v)
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	// ADDRGEN_RATE_LIMIT is "rps" or "rps:burst"; 0 disables limiting
	if v := os.Getenv(EnvRateLimit); v != "" {
		if rl, ok := parseRateLimit(v); ok {
			cfg.Server.RateLimit = rl
		}
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}

func parseRateLimit(s string) (RateLimit, bool) {
	rpsPart, burstPart, hasBurst := strings.Cut(strings.TrimSpace(s), ":")

	rps, err := strconv.ParseFloat(strings.TrimSpace(rpsPart), 64)
	if err != nil || rps < 0 {
		return RateLimit{}, false
	}

	burst := int(rps)
	if hasBurst {
		b, err := strconv.Atoi(strings.TrimSpace(burstPart))
		if err != nil || b < 0 {
			return RateLimit{}, false
		}
		burst = b
	}
	if rps > 0 && burst < 1 {
		burst = 1
	}
	return RateLimit{RequestsPerSecond: rps, Burst: burst}, true
}
