// Package webform bridges HTTP form submissions and the formcheck engine.
//
// The engine deliberately knows nothing about HTTP: it consumes a flat map
// of scalar values. This package produces that map from an incoming request
// (FromValues, ParseRequest) and, for JSON APIs, wraps a RuleSet into an
// http.Handler that answers failed validations with a per-field error
// envelope:
//
//	{"error": {"email": "must be a valid email address"}}
//
// Handlers built here are plain http.Handler values and mount on any
// router, chi included.
package webform
