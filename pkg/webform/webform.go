package webform

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/formcheck"
)

// FromValues flattens url.Values into engine input, keeping the first value
// for each key. The engine's input model is flat scalars, so repeated form
// fields beyond the first are dropped.
func FromValues(values url.Values) map[string]any {
	input := make(map[string]any, len(values))
	for key := range values {
		input[key] = values.Get(key)
	}
	return input
}

// ParseRequest extracts engine input from an HTTP request. Requests carrying
// a body must declare application/x-www-form-urlencoded; query parameters
// are merged in the usual net/http way.
func ParseRequest(r *http.Request) (map[string]any, error) {
	if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
		mediaType := r.Header.Get("Content-Type")
		if idx := strings.Index(mediaType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(mediaType[:idx])
		}
		if mediaType != "application/x-www-form-urlencoded" {
			return nil, fmt.Errorf("%w: got %q, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
		}
	}
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	return FromValues(r.Form), nil
}

// Handler runs the rule set against each request's form data. Unparseable
// requests get 400, failed validations get 422 with the per-field error
// envelope, and valid requests are handed to onValid along with the
// filtered data.
func Handler(rules formcheck.RuleSet, onValid func(w http.ResponseWriter, r *http.Request, data map[string]any)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		input, err := ParseRequest(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			return
		}

		res := formcheck.Validate(input, rules)
		if !res.Success() {
			WriteErrors(w, res)
			return
		}
		onValid(w, r, res.Data())
	})
}

// WriteErrors renders a failed Result as a 422 JSON error envelope.
func WriteErrors(w http.ResponseWriter, res formcheck.Result) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": res.Errors()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
