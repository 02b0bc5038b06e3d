package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail accepts a bare addr-spec with a dotted domain. Display-name
// forms such as "Jane <jane@example.com>" and surrounding spaces fail.
func ValidEmail(field, value string) Rule {
	return Rule{
		Field:   field,
		Code:    "email",
		Message: "must be a valid email address",
		Check:   func() bool { return isEmail(value) },
	}
}

func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Name != "" || addr.Address != value {
		return false
	}

	at := strings.LastIndexByte(value, '@')
	if at <= 0 {
		return false
	}
	labels := strings.Split(value[at+1:], ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" {
			return false
		}
	}
	return true
}
