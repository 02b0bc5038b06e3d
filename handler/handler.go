package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/secureauth/pkg/binder"
)

// HandlerFunc handles a request already decoded into R.
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes a request into v. See package binder.
type Bind func(r *http.Request, v any) error

// ErrorHandler reports errors from binding or rendering.
type ErrorHandler func(ctx Context, err error)

// Option configures Wrap.
type Option func(*wrapConfig)

type wrapConfig struct {
	binders      []Bind
	errorHandler ErrorHandler
}

// WithBinders sets request binders. They are tried in order; a binder that
// returns binder.ErrBinderNotApplicable is skipped. When every binder is
// skipped the request fails with ErrUnsupportedMediaType.
func WithBinders(binders ...Bind) Option {
	return func(c *wrapConfig) { c.binders = append(c.binders, binders...) }
}

// WithErrorHandler replaces the default handler, which renders the JSON
// error envelope without logging.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

func renderError(ctx Context, err error) {
	_ = JSONError(classify(err)).Render(ctx.ResponseWriter(), ctx.Request())
}

// Wrap adapts h to http.HandlerFunc. Without binders R is left zero.
//
//	r.Post("/token", handler.Wrap(login,
//		handler.WithBinders(binder.Form(), binder.JSON()),
//		handler.WithErrorHandler(handler.NewErrorHandler(log)),
//	))
func Wrap[R any](h HandlerFunc[R], opts ...Option) http.HandlerFunc {
	cfg := &wrapConfig{errorHandler: renderError}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		if err := cfg.bind(r, &req); err != nil {
			cfg.errorHandler(ctx, err)
			return
		}

		resp := h(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

func (c *wrapConfig) bind(r *http.Request, v any) error {
	if len(c.binders) == 0 {
		return nil
	}
	for _, bind := range c.binders {
		err := bind(r, v)
		if errors.Is(err, binder.ErrBinderNotApplicable) {
			continue
		}
		return err
	}
	return ErrUnsupportedMediaType
}
