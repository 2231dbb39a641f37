package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		value    string
		wantKind Kind
		wantMsg  string
	}{
		{"first name empty", FirstName, "", MissingField, "firstName must have at least 5 characters"},
		{"first name whitespace", FirstName, "     ", MissingField, "firstName must have at least 5 characters"},
		{"first name too short", FirstName, "Ryan", TooShort, "firstName must have at least 5 characters"},
		{"first name exact", FirstName, "Ryann", 0, ""},
		{"first name multibyte", FirstName, "Zoë M", 0, ""},
		{"last name empty", LastName, "", MissingField, "lastName is a required field"},
		{"last name one char", LastName, "D", 0, ""},
		{"email empty", Email, "", MissingField, "email must be a valid email address"},
		{"email no at", Email, "jjjjj", InvalidFormat, "email must be a valid email address"},
		{"email no tld", Email, "ryan@ryan", InvalidFormat, "email must be a valid email address"},
		{"email trailing dot", Email, "ryan@ryan.", InvalidFormat, "email must be a valid email address"},
		{"email valid", Email, "ryan@ryan.com", 0, ""},
		{"message empty", Message, "", 0, ""},
		{"message anything", Message, "x", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.field, tt.value)
			if tt.wantKind == 0 {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.field, got.Field)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("empty form has three errors", func(t *testing.T) {
		errs := Validate(Values{})
		require.Len(t, errs, 3)
		assert.Equal(t, []Field{FirstName, LastName, Email}, []Field{errs[0].Field, errs[1].Field, errs[2].Field})
	})

	t.Run("message is never validated", func(t *testing.T) {
		errs := Validate(Values{Message: "hi"})
		assert.False(t, errs.Has(Message))
	})

	t.Run("valid values", func(t *testing.T) {
		errs := Validate(Values{FirstName: "Ryann", LastName: "Dill", Email: "ryan@ryan.com"})
		assert.Empty(t, errs)
	})
}

func TestIsEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ryan@ryan.com", true},
		{"first.last+tag@example.co.uk", true},
		{"", false},
		{"jjjjj", false},
		{"@example.com", false},
		{"ryan@", false},
		{"ryan@localhost", false},
		{" ryan@ryan.com", false},
		{"ryan@ryan.com ", false},
		{"x@y@z.com", false},
		{"ryan@ryan.", false},
		{"ryan@.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmail(tt.in))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "missing_field", MissingField.String())
	assert.Equal(t, "too_short", TooShort.String())
	assert.Equal(t, "invalid_format", InvalidFormat.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestParseField(t *testing.T) {
	f, err := ParseField("email")
	require.NoError(t, err)
	assert.Equal(t, Email, f)

	_, err = ParseField("phone")
	require.ErrorIs(t, err, ErrUnknownField)
}
