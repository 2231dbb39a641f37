package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/contactform/internal/core/contact"
	"github.com/colonyops/contactform/internal/core/styles"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	content := m.render()
	if m.showHelp {
		content = m.help.Overlay(content, m.width, m.height)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

// render draws the screen from the form projection: header, inputs with
// their error regions, and the results of the last successful submit.
func (m Model) render() string {
	p := m.form.Project()

	parts := []string{
		styles.HeaderStyle.Render(p.Header),
		m.dialog.View(),
	}
	if p.Display != nil {
		parts = append(parts, "", renderResults(*p.Display))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderResults(s contact.Snapshot) string {
	lines := []string{
		styles.ResultTitleStyle.Render("You Submitted:"),
		resultLine(contact.FirstName, s.FirstNameDisplay()),
		resultLine(contact.LastName, s.LastNameDisplay()),
		resultLine(contact.Email, s.EmailDisplay()),
	}
	if msg, ok := s.MessageDisplay(); ok {
		lines = append(lines, resultLine(contact.Message, msg))
	}

	return styles.ResultStyle.Render(strings.Join(lines, "\n"))
}

func resultLine(f contact.Field, value string) string {
	return styles.ResultLabelStyle.Render(displayName(f)+":") + " " + value
}
