package formcheck

// runFilters feeds value through every filter in order, each consuming the
// previous filter's output. An empty chain returns the value unchanged.
func runFilters(value any, chain []FilterFunc) any {
	for _, fn := range chain {
		value = fn(value)
	}
	return value
}

// runChecks executes checks in order and stops at the first failure, so a
// field carries at most one error message no matter how many checks are
// attached. Returns nil when every check passes.
func runChecks(value any, data map[string]any, field string, chain []CheckFunc) error {
	for _, fn := range chain {
		if err := fn(value, data, field); err != nil {
			return err
		}
	}
	return nil
}
