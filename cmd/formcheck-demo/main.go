// Command formcheck-demo serves a signup form endpoint backed by the
// formcheck engine. It exists to show the pieces working together: form
// parsing via webform, a rule set mixing filters, cross-field checks and
// conditional requirements, and ErrorString rendering with labels loaded
// from a YAML file.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formcheck"
	"github.com/dmitrymomot/formcheck/pkg/checks"
	"github.com/dmitrymomot/formcheck/pkg/filters"
	"github.com/dmitrymomot/formcheck/pkg/webform"
)

type config struct {
	Addr       string `env:"ADDR" envDefault:":8080"`
	LabelsFile string `env:"LABELS_FILE"`
}

func main() {
	// The .env file is optional.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("failed to parse config", "error", err)
		os.Exit(1)
	}

	labels, err := loadLabels(cfg.LabelsFile)
	if err != nil {
		slog.Error("failed to load field labels", "file", cfg.LabelsFile, "error", err)
		os.Exit(1)
	}

	rules := signupRules()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// JSON API variant: failed validations answer with a per-field envelope.
	r.Method(http.MethodPost, "/api/signup", webform.Handler(rules, func(w http.ResponseWriter, _ *http.Request, data map[string]any) {
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, "welcome, %v\n", data["name"])
	}))

	// Plain-text variant: renders all errors as one labeled string.
	r.Post("/signup", func(w http.ResponseWriter, req *http.Request) {
		input, err := webform.ParseRequest(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res := formcheck.Validate(input, rules)
		if !res.Success() {
			msg, terr := res.ErrorString(
				formcheck.WithTemplate("%s: %s"),
				formcheck.WithLabels(labels),
			)
			if terr != nil {
				http.Error(w, terr.Error(), http.StatusInternalServerError)
				return
			}
			http.Error(w, msg, http.StatusUnprocessableEntity)
			return
		}
		fmt.Fprintf(w, "welcome, %v\n", res.Data()["name"])
	})

	slog.Info("listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// signupRules trims every field, normalizes the email, and applies the
// usual signup constraints. The state field is only required for US
// signups, and the password confirmation compares filtered values, so
// stray whitespace never causes a mismatch.
func signupRules() formcheck.RuleSet {
	return formcheck.RuleSet{
		Fields: []string{"name", "email", "pass", "pass2", "country", "state"},
		Filters: []formcheck.FilterRule{
			formcheck.Filter(formcheck.Match(`.`), filters.Trim()),
			formcheck.Filter(formcheck.Exact("email"), filters.Lower()),
			formcheck.Filter(formcheck.Exact("name"), filters.Strip(), filters.Capitalize()),
		},
		Checks: []formcheck.CheckRule{
			formcheck.Check(formcheck.Any("name", "email", "pass", "country"), checks.Required()),
			formcheck.Check(formcheck.Exact("name"), checks.LengthAtMost(100)),
			formcheck.Check(formcheck.Exact("email"), checks.Email()),
			formcheck.Check(formcheck.Exact("pass"), checks.LengthAtLeast(8, "password must be at least 8 characters long")),
			formcheck.Check(formcheck.Exact("pass2"), checks.EqualTo("pass", "passwords do not match")),
			formcheck.Check(formcheck.Exact("country"), checks.In([]string{"US", "CA", "UA"})),
			formcheck.Check(formcheck.Exact("state"), checks.RequiredIf(func(data map[string]any) bool {
				return data["country"] == "US"
			}, "state is required for US signups")),
		},
	}
}

// loadLabels reads an optional field-name to label mapping used when
// rendering the plain-text error string.
func loadLabels(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	labels := make(map[string]string)
	if err := yaml.Unmarshal(raw, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}
