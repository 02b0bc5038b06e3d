package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mountable is implemented by sub-modules that expose their own routes.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which services are mounted in the account module.
type RouterOptions struct {
	// Password mounts the email and password endpoints at the router root.
	Password Mountable
}

// Router creates the account module router.
//
//	r := chi.NewRouter()
//	r.Mount("/", account.Router(account.RouterOptions{
//	    Password: account.NewPasswordHandler(authSvc),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Password != nil {
		r.Mount("/", opts.Password.Handle())
	}

	return r
}
