package validator

import "strings"

const (
	// PasswordMinLength is the minimum password length in characters.
	PasswordMinLength = 8
	// PasswordMaxBytes is the longest password bcrypt hashes without truncation.
	PasswordMaxBytes = 72
)

// PasswordComplexity returns the registration password rules: length bounds
// plus one each of ASCII uppercase, ASCII lowercase, digit, and any other
// character (spaces and non-ASCII letters count as "other").
func PasswordComplexity(field, value string) []Rule {
	return []Rule{
		MinLenString(field, value, PasswordMinLength),
		MaxBytesString(field, value, PasswordMaxBytes),
		PasswordUppercase(field, value),
		PasswordLowercase(field, value),
		PasswordDigit(field, value),
		PasswordSpecialChar(field, value),
	}
}

func PasswordUppercase(field, value string) Rule {
	return containsRule(field, value, "password_uppercase",
		"password must contain at least one uppercase letter", isASCIIUpper)
}

func PasswordLowercase(field, value string) Rule {
	return containsRule(field, value, "password_lowercase",
		"password must contain at least one lowercase letter", isASCIILower)
}

func PasswordDigit(field, value string) Rule {
	return containsRule(field, value, "password_digit",
		"password must contain at least one digit", isASCIIDigit)
}

func PasswordSpecialChar(field, value string) Rule {
	return containsRule(field, value, "password_special",
		"password must contain at least one special character", func(r rune) bool {
			return !isASCIIUpper(r) && !isASCIILower(r) && !isASCIIDigit(r)
		})
}

func containsRule(field, value, code, message string, pred func(rune) bool) Rule {
	return Rule{
		Field:   field,
		Code:    code,
		Message: message,
		Check:   func() bool { return strings.IndexFunc(value, pred) >= 0 },
	}
}

func isASCIIUpper(r rune) bool { return 'A' <= r && r <= 'Z' }
func isASCIILower(r rune) bool { return 'a' <= r && r <= 'z' }
func isASCIIDigit(r rune) bool { return '0' <= r && r <= '9' }
