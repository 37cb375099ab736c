package checks

import (
	"fmt"

	"github.com/dmitrymomot/formcheck"
)

// Length checks measure the value's string form in bytes and treat absent
// values as passing.

// LengthBetween fails when the value is shorter than min or longer than max.
func LengthBetween(min, max int, msg ...string) formcheck.CheckFunc {
	err := failure(msg, fmt.Sprintf("must be between %d and %d characters long", min, max))
	return func(value any, _ map[string]any, _ string) error {
		if value == nil {
			return nil
		}
		if n := len(asString(value)); n < min || n > max {
			return err
		}
		return nil
	}
}

// LengthAtLeast fails when the value is shorter than min.
func LengthAtLeast(min int, msg ...string) formcheck.CheckFunc {
	err := failure(msg, fmt.Sprintf("must be at least %d characters long", min))
	return func(value any, _ map[string]any, _ string) error {
		if value == nil {
			return nil
		}
		if len(asString(value)) < min {
			return err
		}
		return nil
	}
}

// LengthAtMost fails when the value is longer than max.
func LengthAtMost(max int, msg ...string) formcheck.CheckFunc {
	err := failure(msg, fmt.Sprintf("must be at most %d characters long", max))
	return func(value any, _ map[string]any, _ string) error {
		if value == nil {
			return nil
		}
		if len(asString(value)) > max {
			return err
		}
		return nil
	}
}
