package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_FieldChanged(t *testing.T) {
	t.Run("short first name produces one error", func(t *testing.T) {
		s := Reduce(State{}, FieldChanged{Field: FirstName, Value: "Ryan"})
		require.Len(t, s.Errors, 1)
		assert.Contains(t, s.Errors[0].Message, "characters")
		assert.Equal(t, Editing, s.Status)
	})

	t.Run("error clears once satisfied", func(t *testing.T) {
		s := Reduce(State{}, FieldChanged{Field: FirstName, Value: "Ryan"})
		s = Reduce(s, FieldChanged{Field: FirstName, Value: "Ryann"})
		assert.Empty(t, s.Errors)
		assert.Equal(t, "Ryann", s.Values.FirstName)
	})

	t.Run("only the changed field is revalidated", func(t *testing.T) {
		s := Reduce(State{}, FieldChanged{Field: Email, Value: "jjjjj"})
		require.Len(t, s.Errors, 1)
		assert.False(t, s.Errors.Has(FirstName))
		assert.False(t, s.Errors.Has(LastName))
	})

	t.Run("unknown field is ignored", func(t *testing.T) {
		s := Reduce(State{}, FieldChanged{Field: "phone", Value: "123"})
		assert.Equal(t, State{}, s)
	})

	t.Run("input state is untouched", func(t *testing.T) {
		before := Reduce(State{}, FieldChanged{Field: Email, Value: "jjjjj"})
		_ = Reduce(before, FieldChanged{Field: Email, Value: "ryan@ryan.com"})
		assert.Equal(t, "jjjjj", before.Values.Email)
		assert.Len(t, before.Errors, 1)
	})
}

func TestReduce_Submit(t *testing.T) {
	fill := func(v Values) State {
		var s State
		for _, f := range Fields {
			if val := v.Get(f); val != "" {
				s = Reduce(s, FieldChanged{Field: f, Value: val})
			}
		}
		return s
	}

	t.Run("failed submit stays editing", func(t *testing.T) {
		s := Reduce(State{}, SubmitRequested{})
		assert.Len(t, s.Errors, 3)
		assert.Equal(t, Editing, s.Status)
		assert.Nil(t, s.Snapshot)
	})

	t.Run("successful submit freezes a snapshot", func(t *testing.T) {
		s := fill(Values{FirstName: "Ryann", LastName: "Dill", Email: "ryan@ryan.com", Message: "All done"})
		s = Reduce(s, SubmitRequested{})

		assert.Empty(t, s.Errors)
		assert.Equal(t, Submitted, s.Status)
		require.NotNil(t, s.Snapshot)
		msg, ok := s.Snapshot.MessageDisplay()
		assert.True(t, ok)
		assert.Equal(t, "All done", msg)
	})

	t.Run("edit after submit returns to editing and keeps snapshot", func(t *testing.T) {
		s := fill(Values{FirstName: "Ryann", LastName: "Dill", Email: "ryan@ryan.com"})
		s = Reduce(s, SubmitRequested{})
		s = Reduce(s, FieldChanged{Field: LastName, Value: "Dillon"})

		assert.Equal(t, Editing, s.Status)
		require.NotNil(t, s.Snapshot)
		assert.Equal(t, "Dill", s.Snapshot.LastNameDisplay())
	})

	t.Run("failed resubmit keeps the previous snapshot", func(t *testing.T) {
		s := fill(Values{FirstName: "Ryann", LastName: "Dill", Email: "ryan@ryan.com"})
		s = Reduce(s, SubmitRequested{})
		s = Reduce(s, FieldChanged{Field: Email, Value: "nope"})
		s = Reduce(s, SubmitRequested{})

		assert.Equal(t, Editing, s.Status)
		assert.Len(t, s.Errors, 1)
		require.NotNil(t, s.Snapshot)
		assert.Equal(t, "ryan@ryan.com", s.Snapshot.EmailDisplay())
	})

	t.Run("reset clears everything", func(t *testing.T) {
		s := fill(Values{FirstName: "Ryann", LastName: "Dill", Email: "ryan@ryan.com"})
		s = Reduce(s, SubmitRequested{})
		s = Reduce(s, Reset{})
		assert.Equal(t, State{}, s)
	})
}

func TestValues_With(t *testing.T) {
	v := Values{}.With(Message, "hello").With("phone", "123")
	assert.Equal(t, Values{Message: "hello"}, v)
	assert.Equal(t, "hello", v.Get(Message))
	assert.Empty(t, v.Get("phone"))
}
