package domain

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	phonePattern = regexp.MustCompile(`^[+]?[0-9]{10,15}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// FieldErrors maps a form field name to its inline error message. A
// non-empty FieldErrors is a Validation error.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for k := range f {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, k := range fields {
		parts = append(parts, k+": "+f[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(f, ErrValidation) hold.
func (f FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

// Err returns nil when no field failed, otherwise f.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

// required records msg for field when value is blank. It returns false when
// the field failed.
func (f FieldErrors) required(field, value, msg string) bool {
	if strings.TrimSpace(value) == "" {
		f[field] = msg
		return false
	}
	return true
}

func (f FieldErrors) match(field, value string, re *regexp.Regexp, msg string) {
	if _, failed := f[field]; failed {
		return
	}
	if !re.MatchString(strings.TrimSpace(value)) {
		f[field] = msg
	}
}

func (f FieldErrors) maxLen(field, value string, n int, msg string) {
	if _, failed := f[field]; failed {
		return
	}
	if utf8.RuneCountInString(value) > n {
		f[field] = msg
	}
}
