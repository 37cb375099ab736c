// Package filters provides ready-made filter factories for the formcheck
// engine: whitespace trimming and collapsing, case conversion, and
// truncation.
//
// Every factory returns a formcheck.FilterFunc. The string filters apply
// only to string values; anything else, including an absent (nil) value,
// passes through unchanged so that checks can still see absence. The String
// adapter lifts any func(string) string into the same contract, which makes
// existing sanitization helpers usable as filters directly.
package filters
