package formcheck

import "errors"

// Sentinel errors for misuse of an already-computed Result. These signal
// broken caller code, never invalid user input; validation failures are
// reported through Result.Errors instead.
var (
	// ErrUnknownField is returned when a Result accessor is asked about a
	// field that was not part of the resolved field list.
	ErrUnknownField = errors.New("field was not validated")

	// ErrInvalidTemplate is returned when an ErrorString template does not
	// contain exactly two %s placeholders.
	ErrInvalidTemplate = errors.New("template must contain exactly two %s placeholders")
)
