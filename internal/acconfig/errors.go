package acconfig

import (
	"errors"
	"fmt"
)

// ErrMalformedConfig reports a persisted or entered record that cannot be used.
var ErrMalformedConfig = errors.New("malformed config")

// MalformedConfigError describes which record and field failed. Index is
// the position in the config file, or -1 when the record was not read
// from one.
type MalformedConfigError struct {
	Index  int
	Name   string
	Field  string
	Reason string
}

func malformed(name, field, reason string) *MalformedConfigError {
	return &MalformedConfigError{Index: -1, Name: name, Field: field, Reason: reason}
}

func (e *MalformedConfigError) Error() string {
	msg := "malformed config"
	if e.Index >= 0 {
		msg += fmt.Sprintf(" #%d", e.Index)
	}
	if e.Name != "" {
		msg += fmt.Sprintf(" %q", e.Name)
	}
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Reason != "" {
		msg += " " + e.Reason
	}
	return msg
}

func (e *MalformedConfigError) Unwrap() error { return ErrMalformedConfig }
