// Package components provides reusable TUI components.
package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/contactform/internal/core/styles"
)

const helpKeyWidth = 12

// HelpEntry is a single key binding line.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpDialog lists the key bindings of the current screen.
type HelpDialog struct {
	title    string
	footer   string
	sections []HelpDialogSection
}

// NewHelpDialog creates a help dialog. footer is rendered muted under the
// close hint and may be empty.
func NewHelpDialog(title, footer string, sections []HelpDialogSection) *HelpDialog {
	return &HelpDialog{
		title:    title,
		footer:   footer,
		sections: sections,
	}
}

// View renders the dialog box.
func (h *HelpDialog) View() string {
	var lines []string
	for i, section := range h.sections {
		if section.Title != "" {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines,
				styles.HelpDialogSectionStyle.Render(section.Title),
				styles.TextMutedStyle.Render(strings.Repeat("─", 25)),
			)
		}
		for _, entry := range section.Entries {
			lines = append(lines, formatKeyDesc(entry.Key, entry.Desc))
		}
	}

	parts := []string{
		styles.TextForegroundBoldStyle.Render(h.title),
		"",
		strings.Join(lines, "\n"),
		styles.HelpDialogHelpStyle.Render("esc/f1 close"),
	}
	if h.footer != "" {
		parts = append(parts, styles.TextMutedStyle.Render(h.footer))
	}

	return styles.HelpDialogModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Overlay centers the dialog over background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	modal := h.View()

	x := max((width-lipgloss.Width(modal))/2, 0)
	y := max((height-lipgloss.Height(modal))/2, 0)

	modalLayer := lipgloss.NewLayer(modal).X(x).Y(y).Z(1)
	return lipgloss.NewCompositor(lipgloss.NewLayer(background), modalLayer).Render()
}

func formatKeyDesc(key, desc string) string {
	keyCol := lipgloss.NewStyle().Width(helpKeyWidth).Render(key)
	return styles.TextPrimaryBoldStyle.Render(keyCol) + styles.TextForegroundStyle.Render(desc)
}
