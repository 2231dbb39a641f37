package form

import (
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/contactform/internal/core/styles"
)

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() any    // string for text/textarea, nil for buttons
	Label() string // Display label for the field
	SetError(msg string)
	Error() string
}

// renderError renders the error region of a field. Nothing is rendered when
// msg is empty.
func renderError(msg string) string {
	if msg == "" {
		return ""
	}
	return styles.FormErrorStyle.Render("Error: " + msg)
}
