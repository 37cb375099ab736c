// Package checks provides ready-made check factories for the formcheck
// engine: required fields, cross-field equality, length bounds, pattern and
// set membership, and a few format checks (email, UUID, numeric).
//
// Every factory returns a formcheck.CheckFunc closure and accepts an
// optional custom error message as its last argument; without one, a
// sensible default message is used. All checks except Required and
// RequiredIf treat an absent (nil) value as passing, so optional fields
// stay optional: pair them with Required when the field must be present.
//
// The factories are pure and allocation-light; the returned closures hold no
// mutable state and are safe for concurrent use.
package checks
