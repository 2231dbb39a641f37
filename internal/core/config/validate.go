package config

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/contactform/internal/core/styles"
	"github.com/colonyops/contactform/internal/core/validate"
)

const maxSubmitLabel = 20

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, knownTheme),
		validate.Field("form.submit_label", c.Form.SubmitLabel,
			validate.All(validate.NotBlank, validate.MaxLength(maxSubmitLabel))),
		c.validatePlaceholders(),
	)
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

// validatePlaceholders rejects multi-line placeholders, which break the
// single-line inputs.
func (c *Config) validatePlaceholders() error {
	var errs criterio.FieldErrorsBuilder

	fields := []struct {
		name  string
		value string
	}{
		{"first_name", c.Form.Placeholders.FirstName},
		{"last_name", c.Form.Placeholders.LastName},
		{"email", c.Form.Placeholders.Email},
	}

	for _, f := range fields {
		if err := validate.SingleLine(f.value); err != nil {
			errs = errs.Append("form.placeholders."+f.name, err)
		}
	}

	return errs.ToError()
}
