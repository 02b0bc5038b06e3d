// Package validator provides small declarative validation rules.
//
// A Rule names a field, a stable code and a message next to its Check.
// Apply evaluates every rule and returns the failures as Errors:
//
//	err := validator.Apply(append(
//		[]validator.Rule{validator.ValidEmail("email", email)},
//		validator.PasswordComplexity("password", password)...,
//	)...)
//	if errs, ok := validator.As(err); ok {
//		fields := errs.FieldMessages()
//	}
package validator
