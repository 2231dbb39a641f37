// Package tui implements the interactive contact form screen.
package tui

import (
	"context"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/contactform/internal/core/config"
	"github.com/colonyops/contactform/internal/core/contact"
	"github.com/colonyops/contactform/internal/core/logging"
	"github.com/colonyops/contactform/internal/tui/components"
	"github.com/colonyops/contactform/internal/tui/components/form"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Opts configures a Model.
type Opts struct {
	Config    *config.Config
	BuildInfo BuildInfo
}

// Model is the bubbletea model for the contact form screen. It owns one
// contact.Form for its lifetime; the dialog widgets only hold the text being
// edited and every change is replayed into the form.
type Model struct {
	ctx    context.Context
	log    zerolog.Logger
	form   *contact.Form
	dialog *form.Dialog
	inputs []input
	keys   keyMap
	help   *components.HelpDialog

	showHelp bool
	quitting bool
	width    int
	height   int
}

// New mounts a fresh contact form.
func New(opts Opts) Model {
	cfg := opts.Config
	if cfg == nil {
		d := config.DefaultConfig()
		cfg = &d
	}

	formID := uuid.NewString()
	keys := defaultKeyMap()
	dialog, inputs := newContactDialog(cfg.Form)

	m := Model{
		ctx:    logging.WithFormID(context.Background(), formID),
		log:    logging.Component("form"),
		form:   contact.New(),
		dialog: dialog,
		inputs: inputs,
		keys:   keys,
		help:   components.NewHelpDialog("Contact Form Keys", opts.BuildInfo.String(), keys.helpSections()),
		width:  defaultWidth,
		height: defaultHeight,
	}

	m.log.Debug().Ctx(m.ctx).Msg("form mounted")
	return m
}

// FormID returns the identifier attached to this mount's log lines.
func (m Model) FormID() string { return logging.GetFormID(m.ctx) }

// Form exposes the underlying contact form state.
func (m Model) Form() *contact.Form { return m.form }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m.updateDialog(msg)
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Close) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Reset):
		return m.reset()
	}

	return m.updateDialog(msg)
}

// updateDialog routes msg to the dialog, then mirrors widget values into the
// form so errors update while typing.
func (m Model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)

	if m.dialog.Cancelled() {
		return m.quit()
	}

	m.syncValues()

	if m.dialog.Submitted() {
		m.dialog.ClearSubmit()
		next, submitCmd := m.submit()
		return next, tea.Batch(cmd, submitCmd)
	}

	return m, cmd
}

func (m Model) syncValues() {
	values := m.form.Values()
	for _, in := range m.inputs {
		value := in.value()
		if value == values.Get(in.field) {
			continue
		}

		errs, err := m.form.UpdateField(in.field, value)
		if err != nil {
			m.log.Warn().Ctx(m.ctx).Err(err).Str("field", string(in.field)).Msg("dropping field update")
			continue
		}
		m.log.Debug().Ctx(m.ctx).
			Str("field", string(in.field)).
			Int("errors", errs.Len()).
			Msg("field updated")
	}

	m.refreshErrors()
}

func (m Model) refreshErrors() {
	p := m.form.Project()
	for _, in := range m.inputs {
		in.widget.SetError(p.ErrorFor(in.field))
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.syncValues()

	errs, ok := m.form.Submit()
	m.refreshErrors()

	if !ok {
		fields := make([]string, 0, errs.Len())
		for _, fe := range errs {
			fields = append(fields, string(fe.Field))
		}
		m.log.Info().Ctx(m.ctx).Strs("fields", fields).Msg("submit rejected")
		return m, m.dialog.FocusVariable(string(errs[0].Field))
	}

	_, hasMessage := m.form.Snapshot().MessageDisplay()
	m.log.Info().Ctx(m.ctx).Bool("message", hasMessage).Msg("form submitted")
	return m, nil
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.form.Reset()
	for _, in := range m.inputs {
		in.widget.SetValue("")
	}
	m.refreshErrors()

	m.log.Debug().Ctx(m.ctx).Msg("form reset")
	return m, m.dialog.FocusVariable(string(contact.FirstName))
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.log.Debug().Ctx(m.ctx).Bool("submitted", m.form.Submitted()).Msg("form closed")
	return m, tea.Quit
}
