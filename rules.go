package formcheck

import (
	"maps"
	"slices"
)

// FilterFunc transforms a field value before any checks run. Filters are
// expected to be pure: the returned value is the only effect.
type FilterFunc func(value any) any

// CheckFunc inspects a filtered value and reports nil for pass or a non-nil
// error whose message becomes the field's error message. The data map holds
// the filtered values of every selected field, so checks can compare fields
// against each other. Checks must not mutate data.
type CheckFunc func(value any, data map[string]any, field string) error

// FilterRule attaches an ordered filter chain to every field its Pattern matches.
type FilterRule struct {
	Pattern Pattern
	Filters []FilterFunc
}

// CheckRule attaches an ordered check chain to every field its Pattern matches.
type CheckRule struct {
	Pattern Pattern
	Checks  []CheckFunc
}

// RuleSet declares which fields to process and which filters and checks apply
// to them. A RuleSet holds no state and may be shared by concurrent Validate
// calls as long as the attached functions are themselves concurrency-safe.
//
// Fields lists the field names to process, in order. An empty Fields means
// every key present in the input, in lexicographic order (Go map iteration
// order is randomized, so sorting is what makes a run deterministic).
//
// Rule entries are matched in declaration order: every entry whose Pattern
// matches a field contributes its functions to that field's chain, first in
// entry order, then in the order the functions appear within the entry.
type RuleSet struct {
	Fields  []string
	Filters []FilterRule
	Checks  []CheckRule
}

// Filter builds a FilterRule from a pattern and one or more filters.
func Filter(p Pattern, fns ...FilterFunc) FilterRule {
	return FilterRule{Pattern: p, Filters: fns}
}

// Check builds a CheckRule from a pattern and one or more checks.
func Check(p Pattern, fns ...CheckFunc) CheckRule {
	return CheckRule{Pattern: p, Checks: fns}
}

// resolve expands the rule set against the input's keys into the ordered field
// list and the per-field filter and check chains. A field matched by no entry
// gets an empty chain; that is a valid, common case. A nil Pattern or nil
// function in a rule entry is a configuration bug and panics.
func (rs RuleSet) resolve(input map[string]any) ([]string, map[string][]FilterFunc, map[string][]CheckFunc) {
	fields := rs.Fields
	if len(fields) == 0 {
		fields = slices.Sorted(maps.Keys(input))
	}

	filters := make(map[string][]FilterFunc, len(fields))
	checks := make(map[string][]CheckFunc, len(fields))

	for _, field := range fields {
		for _, rule := range rs.Filters {
			if rule.Pattern == nil {
				panic("formcheck: filter rule with nil pattern")
			}
			if !rule.Pattern.matches(field) {
				continue
			}
			for _, fn := range rule.Filters {
				if fn == nil {
					panic("formcheck: filter rule with nil filter for field " + field)
				}
				filters[field] = append(filters[field], fn)
			}
		}
		for _, rule := range rs.Checks {
			if rule.Pattern == nil {
				panic("formcheck: check rule with nil pattern")
			}
			if !rule.Pattern.matches(field) {
				continue
			}
			for _, fn := range rule.Checks {
				if fn == nil {
					panic("formcheck: check rule with nil check for field " + field)
				}
				checks[field] = append(checks[field], fn)
			}
		}
	}

	return fields, filters, checks
}
