package filters_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formcheck/pkg/filters"
)

func TestStringFilters(t *testing.T) {
	t.Run("Trim removes surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "a b", filters.Trim()("  a b\t\n"))
	})

	t.Run("Strip collapses whitespace runs", func(t *testing.T) {
		assert.Equal(t, " a b c ", filters.Strip()("  a \t b \n c  "))
	})

	t.Run("Trim then Strip fully normalizes", func(t *testing.T) {
		v := filters.Strip()(filters.Trim()("  a \t b  "))
		assert.Equal(t, "a b", v)
	})

	t.Run("Lower and Upper", func(t *testing.T) {
		assert.Equal(t, "hello", filters.Lower()("HeLLo"))
		assert.Equal(t, "HELLO", filters.Upper()("HeLLo"))
	})

	t.Run("Capitalize uppercases the first rune only", func(t *testing.T) {
		assert.Equal(t, "Hello world", filters.Capitalize()("hello world"))
		assert.Equal(t, "", filters.Capitalize()(""))
	})

	t.Run("Title cases each word", func(t *testing.T) {
		assert.Equal(t, "Hello World", filters.Title()("hello world"))
	})

	t.Run("Truncate cuts to the byte limit", func(t *testing.T) {
		assert.Equal(t, "abc", filters.Truncate(3)("abcdef"))
		assert.Equal(t, "ab", filters.Truncate(3)("ab"))
	})
}

func TestNonStringPassthrough(t *testing.T) {
	t.Run("nil passes through unchanged", func(t *testing.T) {
		assert.Nil(t, filters.Trim()(nil))
	})

	t.Run("non-string scalars pass through unchanged", func(t *testing.T) {
		assert.Equal(t, 42, filters.Lower()(42))
	})
}

func TestString(t *testing.T) {
	t.Run("lifts a plain string function", func(t *testing.T) {
		reverse := filters.String(func(s string) string {
			runes := []rune(s)
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			return string(runes)
		})

		assert.Equal(t, "cba", reverse("abc"))
		assert.Nil(t, reverse(nil))
	})

	t.Run("composes with standard library helpers", func(t *testing.T) {
		assert.Equal(t, "x", filters.String(strings.TrimSpace)(" x "))
	})
}
