package contact

// Status is the form lifecycle state.
type Status int

const (
	Editing Status = iota
	Submitted
)

func (s Status) String() string {
	if s == Submitted {
		return "submitted"
	}
	return "editing"
}

// Values holds the raw text of every field.
type Values struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

// Get returns the value of a field.
func (v Values) Get(f Field) string {
	switch f {
	case FirstName:
		return v.FirstName
	case LastName:
		return v.LastName
	case Email:
		return v.Email
	case Message:
		return v.Message
	}
	return ""
}

// With returns a copy of v with the field set to value. Unknown fields are
// ignored.
func (v Values) With(f Field, value string) Values {
	switch f {
	case FirstName:
		v.FirstName = value
	case LastName:
		v.LastName = value
	case Email:
		v.Email = value
	case Message:
		v.Message = value
	}
	return v
}

// Snapshot is the frozen copy of the values shown after a successful submit.
// Message is nil when the message field was empty at submit time.
type Snapshot struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Message   *string `json:"message,omitempty"`
}

func (s Snapshot) FirstNameDisplay() string { return s.FirstName }
func (s Snapshot) LastNameDisplay() string  { return s.LastName }
func (s Snapshot) EmailDisplay() string     { return s.Email }

// MessageDisplay returns the submitted message and whether it is shown.
func (s Snapshot) MessageDisplay() (string, bool) {
	if s.Message == nil {
		return "", false
	}
	return *s.Message, true
}

func snapshotOf(v Values) *Snapshot {
	s := &Snapshot{
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Email:     v.Email,
	}
	if v.Message != "" {
		msg := v.Message
		s.Message = &msg
	}
	return s
}

// State is the complete form state. The zero value is a freshly mounted form.
type State struct {
	Values   Values
	Errors   Errors
	Status   Status
	Snapshot *Snapshot // last successful submit, nil until the first one
}

// Event is an input to Reduce.
type Event interface {
	event()
}

// FieldChanged sets a field value and revalidates that field only.
type FieldChanged struct {
	Field Field
	Value string
}

// SubmitRequested validates every field and, when all pass, freezes a
// display snapshot.
type SubmitRequested struct{}

// Reset returns the form to its mounted state.
type Reset struct{}

func (FieldChanged) event()    {}
func (SubmitRequested) event() {}
func (Reset) event()           {}

// Reduce applies an event to a state and returns the new state. It never
// mutates its input.
//
// Any edit moves a submitted form back to Editing. The snapshot is left in
// place until the next successful submit replaces it.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case FieldChanged:
		if !ev.Field.Valid() {
			return s
		}
		s.Values = s.Values.With(ev.Field, ev.Value)
		s.Errors = s.Errors.replace(ev.Field, Check(ev.Field, ev.Value))
		s.Status = Editing
	case SubmitRequested:
		s.Errors = Validate(s.Values)
		if s.Errors.Len() > 0 {
			s.Status = Editing
			return s
		}
		s.Status = Submitted
		s.Snapshot = snapshotOf(s.Values)
	case Reset:
		return State{}
	}
	return s
}
