package contact

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Kind classifies a validation failure.
type Kind int

const (
	MissingField Kind = iota + 1
	TooShort
	InvalidFormat
)

func (k Kind) String() string {
	switch k {
	case MissingField:
		return "missing_field"
	case TooShort:
		return "too_short"
	case InvalidFormat:
		return "invalid_format"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name so JSON output stays readable.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// FieldError is a single active validation error.
type FieldError struct {
	Field   Field  `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Message }

// Rule holds the validation rules for a single field. The message is shared
// by every failure of the rule, so an empty firstName reports the same text
// as a short one.
type Rule struct {
	Required  bool
	MinLength int
	Email     bool
	Message   string
}

var rules = map[Field]Rule{
	FirstName: {Required: true, MinLength: 5, Message: "firstName must have at least 5 characters"},
	LastName:  {Required: true, Message: "lastName is a required field"},
	Email:     {Required: true, Email: true, Message: "email must be a valid email address"},
}

// RuleFor returns the rule for a field. Fields without a rule (message)
// return the zero Rule, which accepts any value.
func RuleFor(f Field) Rule { return rules[f] }

// Check validates value against the rule and returns the resulting error,
// or nil when the value is acceptable.
func (r Rule) Check(field Field, value string) *FieldError {
	fail := func(kind Kind) *FieldError {
		return &FieldError{Field: field, Kind: kind, Message: r.Message}
	}

	switch {
	case strings.TrimSpace(value) == "":
		if r.Required {
			return fail(MissingField)
		}
		return nil
	case r.MinLength > 0 && utf8.RuneCountInString(value) < r.MinLength:
		return fail(TooShort)
	case r.Email && !IsEmail(value):
		return fail(InvalidFormat)
	}
	return nil
}

// Check validates a single field value.
func Check(field Field, value string) *FieldError {
	return RuleFor(field).Check(field, value)
}

// Validate checks every field and returns the full set of failures.
func Validate(v Values) Errors {
	var errs Errors
	for _, f := range Fields {
		if fe := Check(f, v.Get(f)); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

var validate = validator.New()

// IsEmail reports whether s looks like local@domain.tld.
func IsEmail(s string) bool {
	if err := validate.Var(s, "required,email"); err != nil {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	domain := s[at+1:]
	dot := strings.LastIndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
