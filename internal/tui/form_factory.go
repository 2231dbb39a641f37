package tui

import (
	"github.com/colonyops/contactform/internal/core/config"
	"github.com/colonyops/contactform/internal/core/contact"
	"github.com/colonyops/contactform/internal/tui/components/form"
)

// submitVariable is the dialog variable bound to the submit button.
const submitVariable = "submit"

// valueField is a form field whose content mirrors a contact field.
type valueField interface {
	form.Field
	SetValue(string)
}

// input binds a dialog widget to the contact field it edits.
type input struct {
	field  contact.Field
	widget valueField
}

func (in input) value() string {
	s, _ := in.widget.Value().(string)
	return s
}

// newContactDialog builds the contact form dialog: one widget per contact
// field in display order, followed by the submit button.
func newContactDialog(cfg config.FormConfig) (*form.Dialog, []input) {
	inputs := []input{
		{field: contact.FirstName, widget: form.NewTextField(fieldLabel(contact.FirstName), cfg.Placeholders.FirstName, "")},
		{field: contact.LastName, widget: form.NewTextField(fieldLabel(contact.LastName), cfg.Placeholders.LastName, "")},
		{field: contact.Email, widget: form.NewTextField(fieldLabel(contact.Email), cfg.Placeholders.Email, "")},
		{field: contact.Message, widget: form.NewTextAreaField(fieldLabel(contact.Message), cfg.Placeholders.Message, "")},
	}

	components := make([]form.Field, 0, len(inputs)+1)
	variables := make([]string, 0, len(inputs)+1)
	for _, in := range inputs {
		components = append(components, in.widget)
		variables = append(variables, string(in.field))
	}
	components = append(components, form.NewButtonField(cfg.SubmitLabel))
	variables = append(variables, submitVariable)

	d := form.NewDialog(components, variables)
	d.Help = "tab: next  shift+tab: prev  ctrl+s: submit  f1: help  esc: quit"
	return d, inputs
}

// displayName is the human label of a contact field, used by both the
// inputs and the results region.
func displayName(f contact.Field) string {
	switch f {
	case contact.FirstName:
		return "First Name"
	case contact.LastName:
		return "Last Name"
	case contact.Email:
		return "Email"
	case contact.Message:
		return "Message"
	}
	return string(f)
}

// fieldLabel is the input label; required fields carry a trailing asterisk.
func fieldLabel(f contact.Field) string {
	if contact.RuleFor(f).Required {
		return displayName(f) + "*"
	}
	return displayName(f)
}
