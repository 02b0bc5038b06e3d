package account

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/secureauth/handler"
	"github.com/dmitrymomot/secureauth/pkg/auth"
	"github.com/dmitrymomot/secureauth/pkg/binder"
	"github.com/dmitrymomot/secureauth/pkg/clientip"
)

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Email        string `json:"email" form:"email"`
	Password     string `json:"password" form:"password"`
	CaptchaToken string `json:"captcha_token" form:"captcha_token"`
}

// TokenRequest is the body of POST /token. The form variant uses the
// OAuth2 password grant field names.
type TokenRequest struct {
	Email     string `json:"email" form:"username"`
	Password  string `json:"password" form:"password"`
	GrantType string `json:"grant_type,omitempty" form:"grant_type"`
	Scope     string `json:"scope,omitempty" form:"scope"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Active bool      `json:"active"`
}

// TokenResponse is returned by POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// PasswordHandler exposes registration, login, logout and the current user over HTTP.
type PasswordHandler struct {
	auth         *auth.Service
	logger       *slog.Logger
	errorHandler handler.ErrorHandler
}

// PasswordOption configures PasswordHandler.
type PasswordOption func(*PasswordHandler)

// WithLogger sets the logger used for request errors.
func WithLogger(l *slog.Logger) PasswordOption {
	return func(h *PasswordHandler) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewPasswordHandler creates the HTTP adapter for svc.
func NewPasswordHandler(svc *auth.Service, opts ...PasswordOption) *PasswordHandler {
	h := &PasswordHandler{
		auth:   svc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.errorHandler = handler.NewErrorHandler(h.logger)
	return h
}

// Handle returns the module routes.
func (h *PasswordHandler) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/register", handler.Wrap(h.register,
		handler.WithBinders(binder.JSON(), binder.Form()),
		handler.WithErrorHandler(h.errorHandler),
	))
	r.Post("/token", handler.Wrap(h.token,
		handler.WithBinders(binder.Form(), binder.JSON()),
		handler.WithErrorHandler(h.errorHandler),
	))
	r.Post("/logout", handler.Wrap(h.logout,
		handler.WithErrorHandler(h.errorHandler),
	))

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(h.auth, h.renderAuthError))
		r.Get("/me", handler.Wrap(h.me,
			handler.WithErrorHandler(h.errorHandler),
		))
	})

	return r
}

func (h *PasswordHandler) register(ctx handler.Context, req RegisterRequest) handler.Response {
	user, err := h.auth.Register(ctx, auth.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		CaptchaToken: req.CaptchaToken,
		ClientIP:     clientip.FromContext(ctx),
	})
	if err != nil {
		return handler.JSONError(toHTTPError(err))
	}
	return handler.JSON(newUserResponse(user), handler.WithJSONStatus(http.StatusCreated))
}

func (h *PasswordHandler) token(ctx handler.Context, req TokenRequest) handler.Response {
	res, err := h.auth.Login(ctx, ctx.ResponseWriter(), req.Email, req.Password)
	if err != nil {
		return handler.JSONError(toHTTPError(err))
	}
	return handler.JSON(TokenResponse{
		AccessToken: res.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(res.ExpiresIn / time.Second),
	}, handler.WithJSONHeader("Cache-Control", "no-store"))
}

func (h *PasswordHandler) logout(ctx handler.Context, _ struct{}) handler.Response {
	if err := h.auth.Logout(ctx.ResponseWriter()); err != nil {
		return handler.JSONError(err)
	}
	return handler.Empty()
}

func (h *PasswordHandler) me(ctx handler.Context, _ struct{}) handler.Response {
	user, ok := auth.UserFromContext(ctx)
	if !ok {
		return handler.JSONError(toHTTPError(auth.ErrUnauthenticated))
	}
	return handler.JSON(newUserResponse(user))
}

// renderAuthError renders auth.Middleware failures in the JSON envelope.
func (h *PasswordHandler) renderAuthError(w http.ResponseWriter, r *http.Request, err error) {
	if renderErr := handler.JSONError(toHTTPError(err)).Render(w, r); renderErr != nil {
		h.errorHandler(handler.NewContext(w, r), renderErr)
	}
}

func newUserResponse(u *auth.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Active: u.Active}
}
