// Package validation provides the result type shared by every input check.
package validation

import (
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// Result collects the rule violations found in a single input.
// The zero value is a passing result.
type Result struct {
	violations []*addrerr.AddrError
}

// Add records a violation.
func (r *Result) Add(v *addrerr.AddrError) {
	if v == nil {
		return
	}
	r.violations = append(r.violations, v)
}

// Merge returns a result holding the violations of r followed by those of other.
func (r Result) Merge(other Result) Result {
	merged := make([]*addrerr.AddrError, 0, len(r.violations)+len(other.violations))
	merged = append(merged, r.violations...)
	merged = append(merged, other.violations...)
	return Result{violations: merged}
}

// OK reports whether no rule was violated.
func (r Result) OK() bool {
	return len(r.violations) == 0
}

// Violations returns the violations in the order the rules were checked.
func (r Result) Violations() []*addrerr.AddrError {
	out := make([]*addrerr.AddrError, len(r.violations))
	copy(out, r.violations)
	return out
}

// Err returns nil for a passing result, otherwise a *errors.ValidationError.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &addrerr.ValidationError{Violations: r.Violations()}
}

// Message returns "" for a passing result, otherwise every violation message
// joined in check order.
func (r Result) Message() string {
	if r.OK() {
		return ""
	}
	return r.Err().Error()
}
