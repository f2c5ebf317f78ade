package httpadapter

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"digigrow-web/internal/core/domain"
)

// formValue returns the trimmed value of a form field.
func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(formValue(r, key)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// formInt parses an integer field, recording msg in errs when it is not a
// number. An empty field yields 0.
func formInt(r *http.Request, key string, errs domain.FieldErrors, msg string) int {
	v := formValue(r, key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		errs[key] = msg
	}
	return n
}

func formFloat(r *http.Request, key string, errs domain.FieldErrors, msg string) float64 {
	v := strings.ReplaceAll(formValue(r, key), ",", "")
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		errs[key] = msg
	}
	return f
}

// formOptInt64 parses an optional counter; empty means unset.
func formOptInt64(r *http.Request, key string, errs domain.FieldErrors) *int64 {
	v := strings.ReplaceAll(formValue(r, key), ",", "")
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		errs[key] = "Must be a whole number"
		return nil
	}
	return &n
}

func formOptFloat(r *http.Request, key string, errs domain.FieldErrors) *float64 {
	v := strings.ReplaceAll(formValue(r, key), ",", "")
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		errs[key] = "Must be a number"
		return nil
	}
	return &f
}

// lines splits a textarea into its non-blank lines.
func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// idParam parses the {id} route parameter.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// fieldErrors extracts the per-field messages of a validation error.
func fieldErrors(err error) domain.FieldErrors {
	var f domain.FieldErrors
	if errors.As(err, &f) {
		return f
	}
	return domain.FieldErrors{}
}
