// Package contact implements the contact form state: field values, live
// validation, and the display snapshot produced by a successful submit.
//
// All transitions go through Reduce, a pure function of the current State
// and an Event. Form is a small owner of a State for callers that prefer a
// mutable handle (the TUI and the submit command).
package contact

import (
	"errors"
	"fmt"
)

// Field names a contact form input.
type Field string

const (
	FirstName Field = "firstName"
	LastName  Field = "lastName"
	Email     Field = "email"
	Message   Field = "message"
)

// Fields lists every form field in display order.
var Fields = []Field{FirstName, LastName, Email, Message}

// ErrUnknownField is returned when a field name is not part of the form.
var ErrUnknownField = errors.New("unknown field")

// ParseField converts a field name into a Field.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Valid reports whether f is one of the form fields.
func (f Field) Valid() bool { return f.order() >= 0 }

func (f Field) order() int {
	for i, candidate := range Fields {
		if candidate == f {
			return i
		}
	}
	return -1
}
