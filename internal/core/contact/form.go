package contact

import "fmt"

// Form owns the state of one mounted contact form.
type Form struct {
	state State
}

// New returns an empty form.
func New() *Form {
	return &Form{}
}

// Dispatch applies an event and returns the resulting state.
func (f *Form) Dispatch(ev Event) State {
	f.state = Reduce(f.state, ev)
	return f.state
}

// UpdateField sets a field value and returns the updated error set. Only the
// changed field is revalidated.
func (f *Form) UpdateField(field Field, value string) (Errors, error) {
	if !field.Valid() {
		return f.state.Errors, fmt.Errorf("update field: %w: %q", ErrUnknownField, field)
	}
	return f.Dispatch(FieldChanged{Field: field, Value: value}).Errors, nil
}

// Submit validates every field. It reports true when the form was accepted
// and a new snapshot is available.
func (f *Form) Submit() (Errors, bool) {
	s := f.Dispatch(SubmitRequested{})
	return s.Errors, s.Status == Submitted
}

// Reset clears all values, errors and the snapshot.
func (f *Form) Reset() { f.Dispatch(Reset{}) }

func (f *Form) State() State        { return f.state }
func (f *Form) Values() Values      { return f.state.Values }
func (f *Form) Errors() Errors      { return f.state.Errors }
func (f *Form) Status() Status      { return f.state.Status }
func (f *Form) Submitted() bool     { return f.state.Status == Submitted }
func (f *Form) Snapshot() *Snapshot { return f.state.Snapshot }
func (f *Form) Project() Projection { return Project(f.state) }
