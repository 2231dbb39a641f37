package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/contactform/internal/tui/components"
)

// keyMap holds the screen-level bindings. Field navigation (tab, shift+tab,
// enter) belongs to the form dialog.
type keyMap struct {
	Submit key.Binding
	Reset  key.Binding
	Help   key.Binding
	Close  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit form")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear all fields")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "toggle help")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close help / quit")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) helpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{
		{
			Title: "Form",
			Entries: []components.HelpEntry{
				{Key: "tab", Desc: "next field"},
				{Key: "shift+tab", Desc: "previous field"},
				{Key: "enter", Desc: "next field, or submit on the button"},
				helpEntry(k.Submit),
				helpEntry(k.Reset),
			},
		},
		{
			Title: "General",
			Entries: []components.HelpEntry{
				helpEntry(k.Help),
				helpEntry(k.Close),
				helpEntry(k.Quit),
			},
		},
	}
}

func helpEntry(b key.Binding) components.HelpEntry {
	h := b.Help()
	return components.HelpEntry{Key: h.Key, Desc: h.Desc}
}
