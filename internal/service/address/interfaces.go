package address

import "time"

// Logger receives operational log lines. Implementations must be safe for
// concurrent use; *config.Logger satisfies it.
type Logger interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
}

// Recorder records the outcome of an operation; *metrics.Metrics satisfies it.
type Recorder interface {
	RecordOperation(operation string, duration time.Duration, err error)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Error(string, ...any) {}
