package filters

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formcheck"
)

var spaceRun = regexp.MustCompile(`\s+`)

// String lifts a plain string transformation into a FilterFunc that leaves
// non-string values, including absent ones, untouched.
func String(f func(string) string) formcheck.FilterFunc {
	return func(value any) any {
		if s, ok := value.(string); ok {
			return f(s)
		}
		return value
	}
}

// Trim removes leading and trailing whitespace.
func Trim() formcheck.FilterFunc {
	return String(strings.TrimSpace)
}

// Strip collapses every run of whitespace into a single space. It does not
// trim the ends; chain it after Trim for fully normalized text.
func Strip() formcheck.FilterFunc {
	return String(func(s string) string {
		return spaceRun.ReplaceAllString(s, " ")
	})
}

// Lower converts the value to lowercase.
func Lower() formcheck.FilterFunc {
	return String(strings.ToLower)
}

// Upper converts the value to uppercase.
func Upper() formcheck.FilterFunc {
	return String(strings.ToUpper)
}

// Capitalize uppercases the first rune and leaves the rest of the string
// as is.
func Capitalize() formcheck.FilterFunc {
	return String(func(s string) string {
		if s == "" {
			return s
		}
		r, size := utf8.DecodeRuneInString(s)
		return string(unicode.ToUpper(r)) + s[size:]
	})
}

// Title converts the value to title case using Unicode casing rules.
func Title() formcheck.FilterFunc {
	return String(func(s string) string {
		return cases.Title(language.English).String(s)
	})
}

// Truncate cuts the value down to at most maxLen bytes.
func Truncate(maxLen int) formcheck.FilterFunc {
	return String(func(s string) string {
		if len(s) > maxLen {
			return s[:maxLen]
		}
		return s
	})
}
