package contact

// Header is the title rendered above the form.
const Header = "Contact Form"

// Projection is what a renderer needs to draw the form. It is derived from
// State and carries no behavior.
type Projection struct {
	Header  string
	Values  Values
	Errors  Errors
	Status  Status
	Display *Snapshot
}

// Project derives the render projection of a state.
func Project(s State) Projection {
	return Projection{
		Header:  Header,
		Values:  s.Values,
		Errors:  s.Errors,
		Status:  s.Status,
		Display: s.Snapshot,
	}
}

// ErrorFor returns the active error message for a field, or "".
func (p Projection) ErrorFor(f Field) string {
	if fe, ok := p.Errors.Get(f); ok {
		return fe.Message
	}
	return ""
}
