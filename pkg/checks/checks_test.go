package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/checks"
)

func TestRequired(t *testing.T) {
	check := checks.Required()

	t.Run("passes for non-empty values", func(t *testing.T) {
		assert.NoError(t, check("bob", nil, "name"))
		assert.NoError(t, check(0, nil, "count"), "numeric zero is present")
	})

	t.Run("fails for absent value", func(t *testing.T) {
		err := check(nil, nil, "name")
		require.Error(t, err)
		assert.Equal(t, "field is required", err.Error())
	})

	t.Run("fails for blank strings", func(t *testing.T) {
		assert.Error(t, check("", nil, "name"))
		assert.Error(t, check("   ", nil, "name"))
	})

	t.Run("uses custom message", func(t *testing.T) {
		err := checks.Required("please fill in your name")(nil, nil, "name")
		require.Error(t, err)
		assert.Equal(t, "please fill in your name", err.Error())
	})
}

func TestRequiredIf(t *testing.T) {
	usOnly := checks.RequiredIf(func(data map[string]any) bool {
		return data["country"] == "US"
	})

	t.Run("required when the condition holds", func(t *testing.T) {
		err := usOnly(nil, map[string]any{"country": "US"}, "state")
		assert.Error(t, err)
	})

	t.Run("optional when the condition does not hold", func(t *testing.T) {
		assert.NoError(t, usOnly(nil, map[string]any{"country": "CA"}, "state"))
	})

	t.Run("present value always passes", func(t *testing.T) {
		assert.NoError(t, usOnly("WA", map[string]any{"country": "US"}, "state"))
	})
}

func TestEqualTo(t *testing.T) {
	check := checks.EqualTo("pass")

	t.Run("passes when fields match", func(t *testing.T) {
		assert.NoError(t, check("secret", map[string]any{"pass": "secret"}, "pass2"))
	})

	t.Run("fails when fields differ", func(t *testing.T) {
		err := check("secret", map[string]any{"pass": "other"}, "pass2")
		require.Error(t, err)
		assert.Equal(t, "must match pass", err.Error())
	})

	t.Run("two absent fields are equal", func(t *testing.T) {
		assert.NoError(t, check(nil, map[string]any{"pass": nil}, "pass2"))
	})
}

func TestIn(t *testing.T) {
	check := checks.In([]string{"US", "CA", "UA"})

	t.Run("passes for a member", func(t *testing.T) {
		assert.NoError(t, check("CA", nil, "country"))
	})

	t.Run("fails for a non-member", func(t *testing.T) {
		err := check("DE", nil, "country")
		require.Error(t, err)
		assert.Equal(t, "must be one of: US, CA, UA", err.Error())
	})

	t.Run("absent value passes", func(t *testing.T) {
		assert.NoError(t, check(nil, nil, "country"))
	})

	t.Run("non-string scalars compare by their string form", func(t *testing.T) {
		assert.NoError(t, checks.In([]string{"42"})(42, nil, "answer"))
	})
}
