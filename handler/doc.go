// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value decoded by the
// configured binders, and returns a Response. Wrap turns it into an
// http.HandlerFunc:
//
//	type LoginRequest struct {
//		Email    string `json:"email"`
//		Password string `json:"password"`
//	}
//
//	login := func(ctx handler.Context, req LoginRequest) handler.Response {
//		token, err := svc.Login(ctx, ctx.ResponseWriter(), req.Email, req.Password)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(token)
//	}
//
//	r.Post("/token", handler.Wrap(login,
//		handler.WithBinders(binder.JSON()),
//		handler.WithErrorHandler(handler.NewErrorHandler(log)),
//	))
//
// Errors are rendered in a single envelope:
//
//	{"error": {"code": "invalid_credentials", "message": "...", "details": {...}}}
//
// HTTPError values carry their own status and code; binder errors map to 400,
// 413 or 415; anything else is a 500 whose text is never sent to the client.
package handler
