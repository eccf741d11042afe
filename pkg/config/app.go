package config

import (
	"log/slog"

	"github.com/dmitrymomot/sitekit/pkg/cookie"
	"github.com/dmitrymomot/sitekit/pkg/httpserver"
	"github.com/dmitrymomot/sitekit/pkg/redis"
)

// App is the configuration of the sitekit server.
type App struct {
	Env         string     `env:"APP_ENV" envDefault:"development"`
	ServiceName string     `env:"APP_NAME" envDefault:"sitekit"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	HTTP   httpserver.Config
	Redis  redis.Config
	Cookie cookie.Config
	Site   Site
}
