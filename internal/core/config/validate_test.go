package config

import (
	"strings"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Default(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
		wantMsg   string
	}{
		{
			name:      "unknown theme",
			mutate:    func(c *Config) { c.Theme = "solarized" },
			wantField: "theme",
			wantMsg:   "unknown theme",
		},
		{
			name:      "blank submit label",
			mutate:    func(c *Config) { c.Form.SubmitLabel = "   " },
			wantField: "form.submit_label",
			wantMsg:   "blank",
		},
		{
			name:      "long submit label",
			mutate:    func(c *Config) { c.Form.SubmitLabel = strings.Repeat("x", 21) },
			wantField: "form.submit_label",
			wantMsg:   "at most 20",
		},
		{
			name:      "multi-line placeholder",
			mutate:    func(c *Config) { c.Form.Placeholders.Email = "a\nb" },
			wantField: "form.placeholders.email",
			wantMsg:   "single line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
			assert.Contains(t, fieldErrs[0].Err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "nope"
	cfg.Form.Placeholders.FirstName = "a\nb"
	cfg.Form.Placeholders.LastName = "c\rd"

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, cfg.Validate(), &fieldErrs)
	assert.Len(t, fieldErrs, 3)
}
