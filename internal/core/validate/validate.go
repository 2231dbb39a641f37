// Package validate provides shared string checks for use with criterio.Run.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hay-kot/criterio"
)

// NotBlank rejects strings that are empty after trimming whitespace.
func NotBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be blank")
	}
	return nil
}

// SingleLine rejects strings containing a carriage return or line feed.
func SingleLine(s string) error {
	if strings.ContainsAny(s, "\r\n") {
		return fmt.Errorf("must be a single line")
	}
	return nil
}

// MaxLength returns a check that rejects strings longer than n runes.
func MaxLength(n int) func(string) error {
	return func(s string) error {
		if utf8.RuneCountInString(s) > n {
			return fmt.Errorf("must be at most %d characters", n)
		}
		return nil
	}
}

// All runs checks in order and returns the first failure.
func All(checks ...func(string) error) func(string) error {
	return func(s string) error {
		for _, check := range checks {
			if err := check(s); err != nil {
				return err
			}
		}
		return nil
	}
}

// Field runs check against value and reports a failure under field.
func Field(field, value string, check func(string) error) error {
	return criterio.Run(field, value, check)
}
