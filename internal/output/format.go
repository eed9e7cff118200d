// Package output provides output formatting for the addrgen CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

// Output format constants.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatAuto Format = "auto"
)

// Formatter writes command results in a resolved format, never FormatAuto.
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a formatter for w. FormatAuto is resolved against w.
func NewFormatter(format Format, w io.Writer) *Formatter {
	return &Formatter{
		format: DetectFormat(w, format),
		writer: w,
	}
}

// Format returns the resolved output format.
func (f *Formatter) Format() Format {
	return f.format
}

// Writer returns the output writer.
func (f *Formatter) Writer() io.Writer {
	return f.writer
}

// IsJSON returns true if the formatter outputs JSON.
func (f *Formatter) IsJSON() bool {
	return f.format == FormatJSON
}

// Emit writes text as a single line in text mode and v as indented JSON otherwise.
// Bare addresses are emitted as text so they can be piped.
func (f *Formatter) Emit(text string, v any) error {
	if f.format == FormatJSON {
		return writeJSON(f.writer, v)
	}
	_, err := fmt.Fprintln(f.writer, text)
	return err
}

// EmitFields writes fields as aligned "key: value" lines in text mode and as
// a JSON object otherwise.
func (f *Formatter) EmitFields(fields *Fields) error {
	if f.format == FormatJSON {
		return writeJSON(f.writer, fields.Map())
	}
	return fields.Render(f.writer)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// DetectFormat determines the appropriate format based on context.
// Returns text for a terminal and JSON otherwise, unless explicitly overridden.
func DetectFormat(w io.Writer, explicit Format) Format {
	if explicit != FormatAuto && explicit != "" {
		return explicit
	}

	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) { //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.IsTerminal
			return FormatText
		}
	}

	return FormatJSON
}

// ParseFormat parses a format string.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatAuto
	}
}

// Warnf writes a warning line to w, typically stderr.
func Warnf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "warning: "+format+"\n", args...)
}
