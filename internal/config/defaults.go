package config

// DefaultListen is the address the HTTP API binds to.
const DefaultListen = ":5000"

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.addrgen",
		Server: ServerConfig{
			Listen:              DefaultListen,
			ReadTimeoutSeconds:  15,
			WriteTimeoutSeconds: 15,
			IdleTimeoutSeconds:  60,
			RateLimit: RateLimit{
				RequestsPerSecond: 10,
				Burst:             20,
			},
			Metrics: true,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level:         "error",
			File:          "~/.addrgen/addrgen.log",
			MaxAgeHours:   7 * 24,
			RotationHours: 24,
		},
	}
}
