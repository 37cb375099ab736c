package formcheck

import (
	"regexp"
	"slices"
)

// Pattern decides which field names a filter or check rule applies to.
// There are exactly three kinds: an exact field name (Exact), a set of
// field names (Any), and a regular expression (Regexp, Match). The
// interface is sealed; values are only constructed through this package,
// so an unrecognized pattern kind cannot exist at runtime.
type Pattern interface {
	matches(field string) bool
}

type exactPattern string

func (p exactPattern) matches(field string) bool {
	return string(p) == field
}

type setPattern []string

func (p setPattern) matches(field string) bool {
	return slices.Contains(p, field)
}

type regexpPattern struct {
	re *regexp.Regexp
}

func (p regexpPattern) matches(field string) bool {
	return p.re.MatchString(field)
}

// Exact returns a Pattern that matches a single field name by string equality.
func Exact(name string) Pattern {
	return exactPattern(name)
}

// Any returns a Pattern that matches each of the given field names.
func Any(names ...string) Pattern {
	return setPattern(slices.Clone(names))
}

// Regexp returns a Pattern that matches field names against re. Matching is
// unanchored: the expression only has to match a substring of the field name,
// so anchor with ^ and $ to require a full-name match.
func Regexp(re *regexp.Regexp) Pattern {
	return regexpPattern{re: re}
}

// Match is shorthand for Regexp(regexp.MustCompile(expr)). It panics if expr
// does not compile; an invalid expression is a configuration error, not a
// condition to recover from.
func Match(expr string) Pattern {
	return regexpPattern{re: regexp.MustCompile(expr)}
}
