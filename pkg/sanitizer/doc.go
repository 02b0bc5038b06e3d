// Package sanitizer provides composable string normalisation helpers.
//
//	clean := sanitizer.Apply(input, sanitizer.Trim, sanitizer.ToLower)
//	email := sanitizer.NormalizeEmail("  User@Example.COM ") // "user@example.com"
package sanitizer
