package auth

import "net/http"

// ErrorHandler renders a failure from Middleware.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Middleware resolves the current user and stores it in the request context.
// Requests that cannot be resolved are passed to onError; a nil onError
// answers with 401 (or 503 for dependency failures).
func Middleware(svc *Service, onError ErrorHandler) func(http.Handler) http.Handler {
	if onError == nil {
		onError = defaultErrorHandler
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := svc.ResolveCurrentUser(r.Context(), r)
			if err != nil {
				onError(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	if KindOf(err) == KindDependencyUnavailable {
		http.Error(w, messages[KindDependencyUnavailable], http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, messages[KindUnauthenticated], http.StatusUnauthorized)
}
