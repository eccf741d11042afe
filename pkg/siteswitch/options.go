package siteswitch

import (
	"log/slog"

	"github.com/dmitrymomot/sitekit/pkg/cookie"
	"github.com/dmitrymomot/sitekit/pkg/sitepref"
	"github.com/dmitrymomot/sitekit/pkg/siteurl"
)

// Option configures a Switcher.
type Option func(*Switcher)

// WithNormalFactory sets the factory of the normal site.
func WithNormalFactory(f siteurl.Factory) Option {
	return func(s *Switcher) { s.normal = f }
}

// WithMobileFactory sets the factory of the mobile site. Required.
func WithMobileFactory(f siteurl.Factory) Option {
	return func(s *Switcher) { s.mobile = f }
}

// WithTabletFactory sets the factory of the tablet site. Without it tablets
// are never redirected to a tablet variant.
func WithTabletFactory(f siteurl.Factory) Option {
	return func(s *Switcher) { s.tablet = f }
}

// WithResolver sets the preference resolver. It takes precedence over
// WithStore and the cookie store options.
func WithResolver(r *sitepref.Resolver) Option {
	return func(s *Switcher) { s.resolver = r }
}

// WithStore builds the resolver on top of store.
func WithStore(store sitepref.Store) Option {
	return func(s *Switcher) { s.store = store }
}

// WithCookieManager builds the resolver on a cookie store using m.
func WithCookieManager(m *cookie.Manager) Option {
	return func(s *Switcher) {
		s.cookies = m
		s.useCookies = true
	}
}

// WithCookieStoreOptions builds the resolver on a cookie store configured
// with opts. Options accumulate across calls.
func WithCookieStoreOptions(opts ...sitepref.CookieStoreOption) Option {
	return func(s *Switcher) {
		s.cookieOpts = append(s.cookieOpts, opts...)
		s.useCookies = true
	}
}

// WithTabletIsMobile sends tablets on the normal site to the mobile site
// unless the user asked for the normal site.
func WithTabletIsMobile(v bool) Option {
	return func(s *Switcher) { s.tabletIsMobile = v }
}

// WithForwardedHeaders trusts X-Forwarded-Proto and X-Forwarded-Host when
// building redirect URLs.
func WithForwardedHeaders() Option {
	return func(s *Switcher) {
		s.locOpts = append(s.locOpts, siteurl.WithForwardedHeaders())
	}
}

// WithLogger sets the logger for redirect and failure events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Switcher) {
		if l != nil {
			s.logger = l
		}
	}
}
