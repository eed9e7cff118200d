package output

import (
	"fmt"
	"io"
	"strings"
)

// Fields is an ordered list of key/value pairs rendered as an aligned block.
type Fields struct {
	keys   []string
	values []string
}

// NewFields creates an empty field list.
func NewFields() *Fields {
	return &Fields{}
}

// Add appends a field. Empty values are kept so columns stay stable.
func (f *Fields) Add(key, value string) *Fields {
	f.keys = append(f.keys, key)
	f.values = append(f.values, value)
	return f
}

// Len returns the number of fields.
func (f *Fields) Len() int {
	return len(f.keys)
}

// Map returns the fields as a map for JSON encoding.
func (f *Fields) Map() map[string]string {
	m := make(map[string]string, len(f.keys))
	for i, k := range f.keys {
		m[k] = f.values[i]
	}
	return m
}

// Render writes one "key: value" line per field with values aligned.
func (f *Fields) Render(w io.Writer) error {
	width := 0
	for _, k := range f.keys {
		if len(k) > width {
			width = len(k)
		}
	}

	for i, k := range f.keys {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width+1, k+":", f.values[i]); err != nil {
			return err
		}
	}
	return nil
}

// String returns the rendered fields.
func (f *Fields) String() string {
	var sb strings.Builder
	_ = f.Render(&sb)
	return sb.String()
}
