package checks_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/checks"
)

func TestMatch(t *testing.T) {
	check := checks.Match(regexp.MustCompile(`^\d{5}$`))

	t.Run("passes for a matching value", func(t *testing.T) {
		assert.NoError(t, check("90210", nil, "zip"))
	})

	t.Run("fails for a non-matching value", func(t *testing.T) {
		err := check("9021", nil, "zip")
		require.Error(t, err)
		assert.Equal(t, "invalid format", err.Error())
	})

	t.Run("absent value passes", func(t *testing.T) {
		assert.NoError(t, check(nil, nil, "zip"))
	})

	t.Run("uses custom message", func(t *testing.T) {
		err := checks.Match(regexp.MustCompile(`^\d+$`), "digits only")("abc", nil, "zip")
		require.Error(t, err)
		assert.Equal(t, "digits only", err.Error())
	})
}

func TestNumeric(t *testing.T) {
	check := checks.Numeric()

	t.Run("passes for numeric types", func(t *testing.T) {
		assert.NoError(t, check(42, nil, "age"))
		assert.NoError(t, check(3.14, nil, "ratio"))
		assert.NoError(t, check(uint8(7), nil, "count"))
	})

	t.Run("passes for numeric strings", func(t *testing.T) {
		assert.NoError(t, check("42", nil, "age"))
		assert.NoError(t, check(" -3.5 ", nil, "delta"))
	})

	t.Run("fails for non-numeric values", func(t *testing.T) {
		err := check("thirty", nil, "age")
		require.Error(t, err)
		assert.Equal(t, "must be a number", err.Error())
		assert.Error(t, check(true, nil, "age"))
	})

	t.Run("absent value passes", func(t *testing.T) {
		assert.NoError(t, check(nil, nil, "age"))
	})
}

func TestUUID(t *testing.T) {
	check := checks.UUID()

	t.Run("passes for a valid UUID", func(t *testing.T) {
		assert.NoError(t, check("6ba7b810-9dad-11d1-80b4-00c04fd430c8", nil, "id"))
	})

	t.Run("fails for malformed values", func(t *testing.T) {
		err := check("not-a-uuid", nil, "id")
		require.Error(t, err)
		assert.Equal(t, "must be a valid UUID", err.Error())
		assert.Error(t, check(12345, nil, "id"))
	})

	t.Run("absent value passes", func(t *testing.T) {
		assert.NoError(t, check(nil, nil, "id"))
	})
}

func TestEmail(t *testing.T) {
	check := checks.Email()

	t.Run("passes for a bare address", func(t *testing.T) {
		assert.NoError(t, check("user@example.com", nil, "email"))
	})

	t.Run("fails for malformed addresses", func(t *testing.T) {
		err := check("not-an-email", nil, "email")
		require.Error(t, err)
		assert.Equal(t, "must be a valid email address", err.Error())
		assert.Error(t, check("@example.com", nil, "email"))
	})

	t.Run("fails for addresses with a display name", func(t *testing.T) {
		assert.Error(t, check("User <user@example.com>", nil, "email"))
	})

	t.Run("absent value passes", func(t *testing.T) {
		assert.NoError(t, check(nil, nil, "email"))
	})
}
