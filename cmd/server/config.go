package main

import (
	"github.com/dmitrymomot/secureauth/pkg/captcha"
	"github.com/dmitrymomot/secureauth/pkg/clientip"
	"github.com/dmitrymomot/secureauth/pkg/cookie"
	"github.com/dmitrymomot/secureauth/pkg/httpserver"
	"github.com/dmitrymomot/secureauth/pkg/jwt"
	"github.com/dmitrymomot/secureauth/pkg/logger"
	"github.com/dmitrymomot/secureauth/pkg/password"
	"github.com/dmitrymomot/secureauth/pkg/pg"
	"github.com/dmitrymomot/secureauth/pkg/session"
)

// App identifies the running service in logs.
type App struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"secureauth"`
}

// Config is the full service configuration, parsed once at startup.
type Config struct {
	App      App
	Log      logger.Config
	HTTP     httpserver.Config
	JWT      jwt.Config
	Password password.Config
	Cookie   cookie.Config
	Session  session.Config
	Captcha  captcha.Config
	ClientIP clientip.Config
	Postgres pg.Config
}
