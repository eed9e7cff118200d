package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// ErrorOutput represents a structured error for JSON output.
type ErrorOutput struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Violations []ViolationDetail `json:"violations,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	ExitCode   int               `json:"exit_code"`
}

// ViolationDetail is a single failed rule.
type ViolationDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Describe flattens an error into an ErrorDetail. Violations are collected
// from any ValidationError in the chain, including one wrapped by a
// rejected derivation.
func Describe(err error) ErrorDetail {
	detail := ErrorDetail{
		Code:     addrerr.Code(err),
		Message:  err.Error(),
		ExitCode: addrerr.ExitCode(err),
	}

	var ae *addrerr.AddrError
	if _, isAggregate := err.(*addrerr.ValidationError); !isAggregate && errors.As(err, &ae) { //nolint:errorlint // top-level aggregate only
		detail.Message = ae.Message
		var cause *addrerr.ValidationError
		if ae.Cause != nil && !errors.As(ae.Cause, &cause) {
			detail.Message = fmt.Sprintf("%s: %v", ae.Message, ae.Cause)
		}
		detail.Details = ae.Details
		detail.Suggestion = ae.Suggestion
	}

	var ve *addrerr.ValidationError
	if errors.As(err, &ve) {
		for _, v := range ve.Violations {
			detail.Violations = append(detail.Violations, ViolationDetail{Code: v.Code, Message: v.Message})
		}
		if detail.Code == addrerr.ValidationFailedCode {
			detail.Message = "input failed validation"
		}
	}

	return detail
}

// FormatError formats an error for display.
func FormatError(w io.Writer, err error, format Format) error {
	if err == nil {
		return nil
	}

	if format == FormatJSON {
		return writeJSON(w, ErrorOutput{Error: Describe(err)})
	}
	return formatErrorText(w, Describe(err))
}

// formatErrorText outputs error in text format.
func formatErrorText(w io.Writer, detail ErrorDetail) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error: %s\n", detail.Message))

	for _, v := range detail.Violations {
		sb.WriteString(fmt.Sprintf("  - %s\n", v.Message))
	}

	if len(detail.Details) > 0 {
		keys := make([]string, 0, len(detail.Details))
		for k := range detail.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, detail.Details[k]))
		}
	}

	if detail.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\nSuggestion: %s\n", detail.Suggestion))
	}

	_, writeErr := io.WriteString(w, sb.String())
	return writeErr
}
