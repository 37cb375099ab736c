package checks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/formcheck"
)

// failure picks the caller's message override or the default, built once at
// factory time so the closure allocates nothing on the happy path.
func failure(msg []string, def string) error {
	if len(msg) > 0 && msg[0] != "" {
		return errors.New(msg[0])
	}
	return errors.New(def)
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// asString renders a scalar value for length, pattern, and membership
// checks. Strings pass through untouched.
func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Required fails when the value is absent or, for strings, blank after
// trimming whitespace.
func Required(msg ...string) formcheck.CheckFunc {
	err := failure(msg, "field is required")
	return func(value any, _ map[string]any, _ string) error {
		if isBlank(value) {
			return err
		}
		return nil
	}
}

// RequiredIf behaves like Required, but only when cond reports true for the
// filtered data map. Use it for fields that become mandatory depending on
// other fields, e.g. a state field required only for a particular country.
func RequiredIf(cond func(data map[string]any) bool, msg ...string) formcheck.CheckFunc {
	err := failure(msg, "field is required")
	return func(value any, data map[string]any, _ string) error {
		if cond(data) && isBlank(value) {
			return err
		}
		return nil
	}
}

// EqualTo fails unless the value equals the filtered value of another field.
// Comparison uses plain equality, which is what flat scalar input calls for;
// the classic use is a password confirmation field.
func EqualTo(other string, msg ...string) formcheck.CheckFunc {
	err := failure(msg, fmt.Sprintf("must match %s", other))
	return func(value any, data map[string]any, _ string) error {
		if value != data[other] {
			return err
		}
		return nil
	}
}

// In fails unless the value's string form is one of the allowed values.
// Absent values pass.
func In(allowed []string, msg ...string) formcheck.CheckFunc {
	err := failure(msg, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
	set := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}
	return func(value any, _ map[string]any, _ string) error {
		if value == nil {
			return nil
		}
		if _, ok := set[asString(value)]; !ok {
			return err
		}
		return nil
	}
}
