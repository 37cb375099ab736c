package formcheck

// Validate runs the rule set over the input and returns the outcome.
//
// The input is a flat mapping of field names to scalar values and is never
// mutated. Processing happens in three passes: the rule set is resolved
// against the input's keys, every selected field's raw value (nil when the
// key is absent) is run through its filter chain, and then every field's
// check chain runs against the filtered value and the complete filtered data
// map. Checks therefore always see filtered values, including when they look
// at other fields.
//
// Validate itself never fails: missing fields and fields with no matching
// rules are ordinary cases, and check failures are reported through the
// Result rather than an error. A filter or check that panics is a bug in the
// supplied function and propagates to the caller untouched.
//
// Calls are independent and share no state, so concurrent validation is safe
// as long as the supplied filter and check functions are.
func Validate(input map[string]any, rules RuleSet) Result {
	fields, filters, checks := rules.resolve(input)

	data := make(map[string]any, len(fields))
	for _, field := range fields {
		data[field] = runFilters(input[field], filters[field])
	}

	errs := make(map[string]string)
	for _, field := range fields {
		if err := runChecks(data[field], data, field, checks[field]); err != nil {
			errs[field] = err.Error()
		}
	}

	return Result{fields: fields, data: data, errs: errs}
}
