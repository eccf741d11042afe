package cookie

import (
	"net/http"
	"strings"
)

// Config holds cookie manager configuration
type Config struct {
	Secrets  string        `env:"COOKIE_SECRETS" envDefault:""`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge   int           `env:"COOKIE_MAX_AGE" envDefault:"31536000"`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
}

// DefaultConfig returns default cookie configuration: one year, lax, http-only.
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// secretList splits the comma separated secrets, skipping blanks.
func (c Config) secretList() []string {
	var secrets []string
	for s := range strings.SplitSeq(c.Secrets, ",") {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}

// NewFromConfig creates a Manager from cfg. Only non-zero values are applied;
// opts are applied last and win over the config.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := make([]Option, 0, 6+len(opts))

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.MaxAge != 0 {
		configOpts = append(configOpts, WithMaxAge(cfg.MaxAge))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(true))
	}
	configOpts = append(configOpts, WithHTTPOnly(cfg.HttpOnly))
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	return New(cfg.secretList(), append(configOpts, opts...)...)
}
