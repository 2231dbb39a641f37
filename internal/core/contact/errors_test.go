package contact

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors_Replace(t *testing.T) {
	email := &FieldError{Field: Email, Kind: InvalidFormat, Message: "bad email"}
	first := &FieldError{Field: FirstName, Kind: TooShort, Message: "short"}

	var errs Errors
	errs = errs.replace(Email, email)
	errs = errs.replace(FirstName, first)

	require.Len(t, errs, 2)
	assert.Equal(t, FirstName, errs[0].Field, "errors stay in field order")
	assert.Equal(t, Email, errs[1].Field)

	t.Run("replace keeps one entry per field", func(t *testing.T) {
		next := errs.replace(Email, &FieldError{Field: Email, Kind: MissingField, Message: "missing"})
		require.Len(t, next, 2)
		fe, ok := next.Get(Email)
		require.True(t, ok)
		assert.Equal(t, MissingField, fe.Kind)
	})

	t.Run("nil clears", func(t *testing.T) {
		next := errs.replace(FirstName, nil)
		assert.Len(t, next, 1)
		assert.False(t, next.Has(FirstName))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		_ = errs.replace(FirstName, nil)
		assert.Len(t, errs, 2)
		assert.True(t, errs.Has(FirstName))
	})

	t.Run("clearing the last error yields empty", func(t *testing.T) {
		one := Errors{}.replace(LastName, &FieldError{Field: LastName})
		assert.Empty(t, one.replace(LastName, nil))
	})
}

func TestErrors_Err(t *testing.T) {
	assert.NoError(t, Errors{}.Err())

	errs := Validate(Values{FirstName: "Ryann"})
	err := errs.Err()
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "lastName", fieldErrs[0].Field)
	assert.Equal(t, "email", fieldErrs[1].Field)
	assert.Contains(t, fieldErrs[1].Err.Error(), "email must be a valid email address")
}

func TestErrors_Messages(t *testing.T) {
	errs := Validate(Values{})
	assert.Equal(t, []string{
		"firstName must have at least 5 characters",
		"lastName is a required field",
		"email must be a valid email address",
	}, errs.Messages())
}
