package checks

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formcheck"
)

// Match fails unless the value's string form matches re. The match is
// unanchored; anchor the expression to require a full match. Absent values
// pass.
func Match(re *regexp.Regexp, msg ...string) formcheck.CheckFunc {
	err := failure(msg, "invalid format")
	return func(value any, _ map[string]any, _ string) error {
		if value == nil {
			return nil
		}
		if !re.MatchString(asString(value)) {
			return err
		}
		return nil
	}
}

// Numeric fails unless the value is a Go numeric type or a string that
// parses as a number. Absent values pass.
func Numeric(msg ...string) formcheck.CheckFunc {
	err := failure(msg, "must be a number")
	return func(value any, _ map[string]any, _ string) error {
		switch v := value.(type) {
		case nil:
			return nil
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			return nil
		case string:
			if _, perr := strconv.ParseFloat(strings.TrimSpace(v), 64); perr != nil {
				return err
			}
			return nil
		default:
			return err
		}
	}
}

// UUID fails unless the value is a string parseable as a UUID. Absent
// values pass.
func UUID(msg ...string) formcheck.CheckFunc {
	err := failure(msg, "must be a valid UUID")
	return func(value any, _ map[string]any, _ string) error {
		if value == nil {
			return nil
		}
		s, ok := value.(string)
		if !ok {
			return err
		}
		if _, perr := uuid.Parse(s); perr != nil {
			return err
		}
		return nil
	}
}

// Email fails unless the value is a single bare address like user@host.
// Addresses with a display name part are rejected even though the mail
// parser accepts them. Absent values pass.
func Email(msg ...string) formcheck.CheckFunc {
	err := failure(msg, "must be a valid email address")
	return func(value any, _ map[string]any, _ string) error {
		if value == nil {
			return nil
		}
		s, ok := value.(string)
		if !ok {
			return err
		}
		addr, perr := mail.ParseAddress(s)
		if perr != nil || addr.Address != s {
			return err
		}
		return nil
	}
}
