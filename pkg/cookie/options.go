package cookie

import (
	"net/http"
	"time"
)

// Options are the attributes written with a cookie.
type Options struct {
	Path     string
	Domain   string
	MaxAge   int
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

// Option overrides a single cookie attribute.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// apply returns a copy of o with opts applied; o itself is not modified.
func (o Options) apply(opts []Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithPath(path string) Option {
	return func(o *Options) { o.Path = path }
}

// WithDomain scopes the cookie to a domain. A leading dot (".example.com")
// shares the cookie across subdomains.
func WithDomain(domain string) Option {
	return func(o *Options) { o.Domain = domain }
}

func WithMaxAge(seconds int) Option {
	return func(o *Options) { o.MaxAge = seconds }
}

// WithTTL sets Max-Age from a duration, truncated to whole seconds.
func WithTTL(ttl time.Duration) Option {
	return func(o *Options) { o.MaxAge = int(ttl / time.Second) }
}

func WithSecure(secure bool) Option {
	return func(o *Options) { o.Secure = secure }
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) { o.HttpOnly = httpOnly }
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) { o.SameSite = sameSite }
}
