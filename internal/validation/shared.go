// Package validation checks user-supplied input before it reaches the
// service layer. Failures carry a per-field message map so handlers can
// return structured 400 responses.
package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Error is a per-field validation failure. Fields maps the offending input
// field to a human-readable reason.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return strings.Join(msgs, "; ")
}
