// Package formcheck is a small rule-driven filtering and validation engine
// for flat, form-like input such as decoded web forms and API payloads.
//
// A validation run takes a map of raw values and a declarative RuleSet and
// produces a Result holding either the cleaned values or one error message
// per failed field. The engine owns only the interesting part of the
// problem: matching rule patterns against field names, running ordered
// filter chains, running short-circuiting check chains, and assembling a
// stable outcome. The filters and checks themselves are plain functions the
// caller plugs in; ready-made ones live in the companion pkg/filters and
// pkg/checks packages.
//
// # Architecture
//
// A RuleSet names the fields to process (or all input keys when left empty)
// plus ordered lists of filter and check entries. Each entry pairs a Pattern
// (exact name, set of names, or regular expression) with a function chain;
// every entry whose pattern matches a field contributes to that field's
// chain, in declaration order. Validate then runs two passes: filters first,
// each transforming the previous output, then checks against the filtered
// data. A check chain stops at its first failure, so a field carries at most
// one message. Cross-field checks see filtered values, which is what makes a
// trimmed password comparison come out right.
//
// The package is stateless: every Validate call builds its Result from
// scratch and shares nothing with other calls, so concurrent validation
// needs no locking as long as the supplied functions are themselves safe.
//
// # Usage
//
//	rules := formcheck.RuleSet{
//		Fields: []string{"name", "email", "pass", "pass2"},
//		Filters: []formcheck.FilterRule{
//			formcheck.Filter(formcheck.Match(`.`), filters.Trim()),
//		},
//		Checks: []formcheck.CheckRule{
//			formcheck.Check(formcheck.Any("name", "email"), checks.Required()),
//			formcheck.Check(formcheck.Exact("email"), checks.Email()),
//			formcheck.Check(formcheck.Exact("pass2"), checks.EqualTo("pass")),
//		},
//	}
//
//	res := formcheck.Validate(input, rules)
//	if !res.Success() {
//		msg, _ := res.ErrorString()
//		// render msg, or inspect res.Errors() per field
//	}
//
// # Error Handling
//
// Failed checks are data, not errors: they end up in Result.Errors and never
// surface as a Go error from Validate. Errors are reserved for broken caller
// code: asking a Result about a field it never validated (ErrUnknownField)
// or rendering with a malformed template (ErrInvalidTemplate). Malformed
// rule sets (a nil Pattern, a nil function, an invalid Match expression)
// panic, since they cannot be produced by user input. A filter or check that
// panics during execution is not caught; the engine does not own those
// functions.
//
// # Performance Considerations
//
// Everything is in-memory and synchronous; a run allocates the Result maps
// and nothing else of note. There is no schema compilation or caching.
// Resolution cost is proportional to fields times rule entries, which is
// negligible at form sizes.
package formcheck
