// Package binder decodes HTTP request bodies into typed structs.
//
// JSON binds application/json bodies strictly; Form binds
// application/x-www-form-urlencoded bodies by `form` tag. Each binder returns
// ErrBinderNotApplicable for other content types, so several can be chained
// and the first applicable one wins:
//
//	type LoginRequest struct {
//	    Username string `json:"username" form:"username"`
//	    Password string `json:"password" form:"password"`
//	}
//
//	http.HandleFunc("/token", handler.Wrap(login,
//	    handler.WithBinders(binder.JSON(), binder.Form()),
//	))
//
// Bodies are limited to DefaultMaxBodySize bytes.
package binder
