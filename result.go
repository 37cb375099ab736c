package formcheck

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Result is the immutable outcome of one Validate call: a success flag, the
// filtered data, and at most one error message per field. The zero value
// behaves like a successful validation of zero fields.
//
// The data map may be populated even when Success reports false; callers
// should not rely on its contents in that case.
type Result struct {
	fields []string
	data   map[string]any
	errs   map[string]string
}

// Success reports whether every selected field passed its checks. It is true
// exactly when Errors is empty.
func (r Result) Success() bool {
	return len(r.errs) == 0
}

// Fields returns the resolved field list in processing order.
func (r Result) Fields() []string {
	return slices.Clone(r.fields)
}

// Data returns a copy of the filtered values, keyed by field name. Every
// selected field is present; a field absent from the input maps to nil.
func (r Result) Data() map[string]any {
	return maps.Clone(r.data)
}

// Errors returns a copy of the per-field error messages. Fields that passed
// do not appear.
func (r Result) Errors() map[string]string {
	return maps.Clone(r.errs)
}

// Value returns the filtered value of a single field. Asking about a field
// outside the resolved field list returns ErrUnknownField: that means the
// rule set never selected the field, which is a caller bug rather than a
// validation outcome.
func (r Result) Value(field string) (any, error) {
	if !slices.Contains(r.fields, field) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return r.data[field], nil
}

// FieldError returns the error message recorded for a single field, or the
// empty string when the field passed. Like Value, it returns ErrUnknownField
// for a field the rule set never selected.
func (r Result) FieldError(field string) (string, error) {
	if !slices.Contains(r.fields, field) {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return r.errs[field], nil
}

type errorStringOptions struct {
	template  string
	separator string
	labels    map[string]string
	single    bool
}

// ErrorStringOption configures Result.ErrorString.
type ErrorStringOption func(*errorStringOptions)

// WithTemplate sets the per-field line template. It must contain exactly two
// %s placeholders: the first receives the field label, the second the error
// message.
func WithTemplate(tpl string) ErrorStringOption {
	return func(o *errorStringOptions) { o.template = tpl }
}

// WithSeparator sets the string joining the rendered lines. Default "\n".
func WithSeparator(sep string) ErrorStringOption {
	return func(o *errorStringOptions) { o.separator = sep }
}

// WithLabels maps field names to human-readable labels. Fields without an
// entry fall back to their raw name.
func WithLabels(labels map[string]string) ErrorStringOption {
	return func(o *errorStringOptions) { o.labels = labels }
}

// WithSingle renders only the first error in field order instead of all of them.
func WithSingle() ErrorStringOption {
	return func(o *errorStringOptions) { o.single = true }
}

// ErrorString renders the error map into one string, one templated line per
// failed field, in resolved-field order. With no errors it returns "". A
// template without exactly two %s placeholders returns ErrInvalidTemplate;
// that is a configuration mistake and must not be silently formatted away.
func (r Result) ErrorString(opts ...ErrorStringOption) (string, error) {
	o := errorStringOptions{template: "%s %s", separator: "\n"}
	for _, opt := range opts {
		opt(&o)
	}

	if strings.Count(strings.ReplaceAll(o.template, "%%", ""), "%s") != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTemplate, o.template)
	}

	var lines []string
	for _, field := range r.fields {
		msg, failed := r.errs[field]
		if !failed {
			continue
		}
		label := field
		if l, ok := o.labels[field]; ok {
			label = l
		}
		lines = append(lines, fmt.Sprintf(o.template, label, msg))
		if o.single {
			break
		}
	}
	return strings.Join(lines, o.separator), nil
}
