package contact

import "github.com/hay-kot/criterio"

// Errors is the ordered set of active validation errors. It holds at most
// one entry per field, always in form field order.
type Errors []FieldError

// Len returns the number of active errors.
func (e Errors) Len() int { return len(e) }

// Get returns the active error for a field.
func (e Errors) Get(f Field) (FieldError, bool) {
	for _, fe := range e {
		if fe.Field == f {
			return fe, true
		}
	}
	return FieldError{}, false
}

// Has reports whether the field has an active error.
func (e Errors) Has(f Field) bool {
	_, ok := e.Get(f)
	return ok
}

// Messages returns the error messages in field order.
func (e Errors) Messages() []string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return msgs
}

// Err converts the set into criterio field errors, or nil when empty.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}

	var errs criterio.FieldErrorsBuilder
	for _, fe := range e {
		errs = errs.Append(string(fe.Field), fe)
	}
	return errs.ToError()
}

// replace returns a copy of the set with the error for field swapped for fe.
// A nil fe clears the field.
func (e Errors) replace(field Field, fe *FieldError) Errors {
	out := make(Errors, 0, len(e)+1)
	inserted := fe == nil
	for _, existing := range e {
		if existing.Field == field {
			continue
		}
		if !inserted && field.order() < existing.Field.order() {
			out = append(out, *fe)
			inserted = true
		}
		out = append(out, existing)
	}
	if !inserted {
		out = append(out, *fe)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
