package validator

import (
	"errors"
	"strings"
)

// Rule is a single named check on a field value.
type Rule struct {
	Field   string
	Code    string // stable identifier, e.g. "password_digit"
	Message string
	Check   func() bool
}

// Violation is a failed Rule.
type Violation struct {
	Field   string
	Code    string
	Message string
}

// Errors is the ordered list of violations returned by Apply.
type Errors []Violation

func (e Errors) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")
	for i, v := range e {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(v.Field)
		b.WriteString(": ")
		b.WriteString(v.Message)
	}
	return b.String()
}

// Has reports whether any violation concerns field.
func (e Errors) Has(field string) bool {
	for _, v := range e {
		if v.Field == field {
			return true
		}
	}
	return false
}

// FieldMessages groups messages by field, keeping rule order within a field.
func (e Errors) FieldMessages() map[string][]string {
	if len(e) == 0 {
		return nil
	}
	out := make(map[string][]string, len(e))
	for _, v := range e {
		out[v.Field] = append(out[v.Field], v.Message)
	}
	return out
}

// Apply runs every rule and returns the violations as Errors, or nil if all pass.
func Apply(rules ...Rule) error {
	var errs Errors
	for _, r := range rules {
		if !r.Check() {
			errs = append(errs, Violation{Field: r.Field, Code: r.Code, Message: r.Message})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// As returns the Errors wrapped in err, if any.
func As(err error) (Errors, bool) {
	var errs Errors
	if err == nil || !errors.As(err, &errs) {
		return nil, false
	}
	return errs, true
}
