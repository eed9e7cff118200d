package errors

import "strings"

// ValidationFailedCode is the code reported for an aggregated validation failure.
const ValidationFailedCode = "VALIDATION_FAILED"

// messageSeparator joins violation messages in ValidationError.Error.
const messageSeparator = "; "

// ValidationError aggregates every rule a single input violated.
type ValidationError struct {
	Violations []*AddrError
}

// Error joins the violation messages in the order the rules were checked.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, messageSeparator)
}

// Unwrap exposes each violation so errors.Is matches any of them.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Violations))
	for _, v := range e.Violations {
		errs = append(errs, v)
	}
	return errs
}

