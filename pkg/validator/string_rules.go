package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString fails for values that are empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Field:   field,
		Code:    "required",
		Message: "field is required",
		Check:   func() bool { return strings.TrimSpace(value) != "" },
	}
}

// MinLenString measures value in characters, not bytes.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Field:   field,
		Code:    "min_length",
		Message: fmt.Sprintf("must be at least %d characters long", min),
		Check:   func() bool { return utf8.RuneCountInString(value) >= min },
	}
}

// MaxBytesString measures the encoded length of value.
func MaxBytesString(field, value string, max int) Rule {
	return Rule{
		Field:   field,
		Code:    "max_bytes",
		Message: fmt.Sprintf("must be at most %d bytes long", max),
		Check:   func() bool { return len(value) <= max },
	}
}
