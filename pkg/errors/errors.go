// Package errors provides structured error handling for addrgen.
// It defines sentinel errors, error kinds, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes for the CLI.
const (
	ExitSuccess    = 0 // Successful execution
	ExitGeneral    = 1 // General/unknown error
	ExitInput      = 2 // Invalid input
	ExitValidation = 3 // Input failed a policy or shape rule
	ExitDerivation = 4 // Key derivation or script assembly failed
)

// Kind classifies an error independently of its transport mapping.
type Kind int

// Error kinds.
const (
	// KindGeneral is anything not covered below.
	KindGeneral Kind = iota
	// KindInput means a value of the wrong shape reached the boundary.
	KindInput
	// KindValidation means a policy rule was violated; the caller can correct and retry.
	KindValidation
	// KindDerivation means deterministic derivation failed; retrying the same input fails again.
	KindDerivation
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindValidation:
		return "validation"
	case KindDerivation:
		return "derivation"
	case KindGeneral:
		return "general"
	default:
		return "general"
	}
}

// AddrError is the structured error type for addrgen.
type AddrError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
	Kind       Kind              // Error classification
}

func (e *AddrError) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *AddrError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for AddrError.
func (e *AddrError) Is(target error) bool {
	var t *AddrError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &AddrError{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
		Kind:     KindGeneral,
	}

	ErrInvalidInput = &AddrError{
		Code:     "INVALID_INPUT",
		Message:  "input parameters type invalid",
		ExitCode: ExitInput,
		Kind:     KindInput,
	}

	// Mnemonic and path validation errors.
	ErrInvalidMnemonicLength = &AddrError{
		Code:     "INVALID_MNEMONIC_LENGTH",
		Message:  "seed phrase must has 12 to 24 words",
		ExitCode: ExitValidation,
		Kind:     KindValidation,
	}

	ErrInvalidPathDepth = &AddrError{
		Code:     "INVALID_PATH_DEPTH",
		Message:  "derivation path must has 6 level",
		ExitCode: ExitValidation,
		Kind:     KindValidation,
	}

	// Multisig policy errors.
	ErrThresholdExceedsTotal = &AddrError{
		Code:     "THRESHOLD_EXCEEDS_TOTAL",
		Message:  "param m must be greater or equals to n",
		ExitCode: ExitValidation,
		Kind:     KindValidation,
	}

	ErrNonPositivePolicy = &AddrError{
		Code:     "NON_POSITIVE_POLICY",
		Message:  "input m and n must be greater than 0",
		ExitCode: ExitValidation,
		Kind:     KindValidation,
	}

	ErrKeyCountMismatch = &AddrError{
		Code:     "KEY_COUNT_MISMATCH",
		Message:  "length of public keys must equal to m",
		ExitCode: ExitValidation,
		Kind:     KindValidation,
	}

	ErrInvalidPublicKeyEncoding = &AddrError{
		Code:     "INVALID_PUBLIC_KEY_ENCODING",
		Message:  "public key is not a valid hex encoded compressed public key",
		ExitCode: ExitValidation,
		Kind:     KindValidation,
	}

	ErrPolicyExceedsProtocolLimit = &AddrError{
		Code:     "POLICY_EXCEEDS_PROTOCOL_LIMIT",
		Message:  "multisig policy supports at most 15 public keys",
		ExitCode: ExitValidation,
		Kind:     KindValidation,
	}

	// Derivation errors.
	ErrDerivationRejected = &AddrError{
		Code:     "DERIVATION_REJECTED",
		Message:  "derivation rejected",
		ExitCode: ExitDerivation,
		Kind:     KindDerivation,
	}

	ErrDerivationFailure = &AddrError{
		Code:     "DERIVATION_FAILURE",
		Message:  "derivation failed",
		ExitCode: ExitDerivation,
		Kind:     KindDerivation,
	}

	// Config-specific errors.
	ErrConfigNotFound = &AddrError{
		Code:     "CONFIG_NOT_FOUND",
		Message:  "configuration file not found",
		ExitCode: ExitInput,
		Kind:     KindInput,
	}

	ErrConfigInvalid = &AddrError{
		Code:     "CONFIG_INVALID",
		Message:  "configuration file is invalid",
		ExitCode: ExitInput,
		Kind:     KindInput,
	}

	ErrUnknownConfigKey = &AddrError{
		Code:     "UNKNOWN_CONFIG_KEY",
		Message:  "unknown configuration key",
		ExitCode: ExitInput,
		Kind:     KindInput,
	}

	ErrRateLimited = &AddrError{
		Code:     "RATE_LIMITED",
		Message:  "too many requests",
		ExitCode: ExitGeneral,
		Kind:     KindGeneral,
	}
)

// Violation returns a copy of a sentinel with a more specific message.
// The copy still matches the sentinel under errors.Is.
func Violation(sentinel *AddrError, message string) *AddrError {
	return &AddrError{
		Code:     sentinel.Code,
		Message:  message,
		ExitCode: sentinel.ExitCode,
		Kind:     sentinel.Kind,
	}
}

// WithCause returns a copy of a sentinel carrying the given cause.
func WithCause(sentinel *AddrError, cause error) error {
	return &AddrError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Details:    sentinel.Details,
		Suggestion: sentinel.Suggestion,
		Cause:      cause,
		ExitCode:   sentinel.ExitCode,
		Kind:       sentinel.Kind,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var ae *AddrError
	if errors.As(err, &ae) {
		return &AddrError{
			Code:       ae.Code,
			Message:    ae.Message,
			Details:    details,
			Suggestion: ae.Suggestion,
			Cause:      ae.Cause,
			ExitCode:   ae.ExitCode,
			Kind:       ae.Kind,
		}
	}

	return &AddrError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
		Kind:     KindGeneral,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var ae *AddrError
	if errors.As(err, &ae) {
		return &AddrError{
			Code:       ae.Code,
			Message:    ae.Message,
			Details:    ae.Details,
			Suggestion: suggestion,
			Cause:      ae.Cause,
			ExitCode:   ae.ExitCode,
			Kind:       ae.Kind,
		}
	}

	return &AddrError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
		Kind:       KindGeneral,
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if _, ok := err.(*ValidationError); ok { //nolint:errorlint // top-level aggregate only
		return ExitValidation
	}

	var ae *AddrError
	if errors.As(err, &ae) {
		return ae.ExitCode
	}

	return ExitGeneral
}

// Code returns the error code for an error.
func Code(err error) string {
	if _, ok := err.(*ValidationError); ok { //nolint:errorlint // top-level aggregate only
		return ValidationFailedCode
	}
	var ae *AddrError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return "GENERAL_ERROR"
}

// KindOf returns the kind of an error. The outermost AddrError wins, so a
// derivation error that wraps validation failures is still a derivation error.
func KindOf(err error) Kind {
	if _, ok := err.(*ValidationError); ok { //nolint:errorlint // top-level aggregate only
		return KindValidation
	}
	var ae *AddrError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	return KindGeneral
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
