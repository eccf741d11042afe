package siteswitch

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sitekit/pkg/cookie"
	"github.com/dmitrymomot/sitekit/pkg/device"
	"github.com/dmitrymomot/sitekit/pkg/sitepref"
	"github.com/dmitrymomot/sitekit/pkg/siteurl"
)

// Switcher decides whether a request should be served as is or redirected
// to another site variant. It is immutable and safe for concurrent use.
type Switcher struct {
	normal siteurl.Factory
	mobile siteurl.Factory
	tablet siteurl.Factory

	resolver   *sitepref.Resolver
	store      sitepref.Store
	cookies    *cookie.Manager
	cookieOpts []sitepref.CookieStoreOption
	useCookies bool

	tabletIsMobile bool
	locOpts        []siteurl.LocationOption
	logger         *slog.Logger
}

// Decision is the outcome of Switcher.Decide.
type Decision struct {
	// Redirect is true when the request must be sent to URL.
	Redirect bool
	// Current is the variant the request is addressed to.
	Current siteurl.Site
	// Target is the variant that serves the request: Current when
	// Redirect is false.
	Target siteurl.Site
	URL    string

	Device        device.Device
	Preference    sitepref.Preference
	HasPreference bool
}

// New creates a Switcher. A mobile factory and a preference source
// (WithResolver, WithStore or one of the cookie store options) are required.
func New(opts ...Option) (*Switcher, error) {
	s := &Switcher{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	if s.mobile == nil {
		return nil, ErrNoMobileFactory
	}

	if s.resolver == nil {
		store := s.store
		if store == nil && s.useCookies {
			cs, err := sitepref.NewCookieStore(s.cookies, s.cookieOpts...)
			if err != nil {
				return nil, fmt.Errorf("siteswitch: cookie store: %w", err)
			}
			store = cs
		}
		if store == nil {
			return nil, ErrNoResolver
		}
		res, err := sitepref.NewResolver(store, sitepref.WithLogger(s.logger))
		if err != nil {
			return nil, err
		}
		s.resolver = res
	}

	return s, nil
}

// Decide resolves the preference of r, persisting an explicit override
// through w, and decides where the request belongs.
//
// The device must already be in the request context (see device.Middleware);
// ErrNoDevice is returned otherwise.
func (s *Switcher) Decide(w http.ResponseWriter, r *http.Request) (Decision, error) {
	d, ok := device.FromContext(r.Context())
	if !ok {
		return Decision{}, ErrNoDevice
	}

	pref, hasPref := s.resolver.Resolve(w, r)
	loc := siteurl.LocationFromRequest(r, s.locOpts...)
	current := s.currentSite(loc)

	dec := Decision{
		Current:       current,
		Target:        current,
		Device:        d,
		Preference:    pref,
		HasPreference: hasPref,
	}

	target, move := s.target(current, d.Class, pref, hasPref)
	if !move {
		return dec, nil
	}

	f := s.factory(target)
	if f == nil || f.IsRequestForSite(loc) {
		return dec, nil
	}

	dec.Redirect = true
	dec.Target = target
	dec.URL = f.CreateSiteURL(loc)
	return dec, nil
}

// Resolver returns the preference resolver in use.
func (s *Switcher) Resolver() *sitepref.Resolver { return s.resolver }

// Factory returns the factory for site, or nil when it is not configured.
func (s *Switcher) Factory(site siteurl.Site) siteurl.Factory { return s.factory(site) }

func (s *Switcher) factory(site siteurl.Site) siteurl.Factory {
	switch site {
	case siteurl.SiteMobile:
		return s.mobile
	case siteurl.SiteTablet:
		return s.tablet
	default:
		return s.normal
	}
}

func (s *Switcher) currentSite(loc siteurl.Location) siteurl.Site {
	switch {
	case s.mobile.IsRequestForSite(loc):
		return siteurl.SiteMobile
	case s.tablet != nil && s.tablet.IsRequestForSite(loc):
		return siteurl.SiteTablet
	default:
		return siteurl.SiteNormal
	}
}

// target applies the switching rules. An explicit preference beats the
// device class. tabletIsMobile only applies to requests on the normal site.
func (s *Switcher) target(current siteurl.Site, class device.Class, pref sitepref.Preference, hasPref bool) (siteurl.Site, bool) {
	unset := !hasPref

	switch current {
	case siteurl.SiteMobile:
		switch {
		case pref.IsNormal():
			return siteurl.SiteNormal, true
		case pref.IsTablet(), s.tablet != nil && class == device.Tablet && unset:
			return siteurl.SiteTablet, true
		}

	case siteurl.SiteTablet:
		switch {
		case pref.IsNormal():
			return siteurl.SiteNormal, true
		case pref.IsMobile(), class == device.Mobile && unset:
			return siteurl.SiteMobile, true
		}

	default:
		switch {
		case pref.IsMobile(),
			class == device.Mobile && unset,
			s.tabletIsMobile && class == device.Tablet && !pref.IsNormal():
			return siteurl.SiteMobile, true
		case pref.IsTablet(), class == device.Tablet && unset:
			return siteurl.SiteTablet, true
		}
	}

	return current, false
}
