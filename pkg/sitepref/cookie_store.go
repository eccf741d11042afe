package sitepref

import (
	"net/http"

	"github.com/dmitrymomot/sitekit/pkg/cookie"
)

// DefaultCookieName is the cookie holding the preference in CookieStore.
const DefaultCookieName = "sitekit.sitepref.SITE_PREFERENCE"

// CookieStore keeps the preference on the client in a cookie.
type CookieStore struct {
	cookies *cookie.Manager
	name    string
	signed  bool
	opts    []cookie.Option
}

// CookieStoreOption configures a CookieStore.
type CookieStoreOption func(*CookieStore)

// WithCookieName overrides DefaultCookieName.
func WithCookieName(name string) CookieStoreOption {
	return func(s *CookieStore) {
		if name != "" {
			s.name = name
		}
	}
}

// WithCookieDomain scopes the preference cookie to a domain. Use a leading
// dot (".example.com") to share it between example.com and m.example.com.
func WithCookieDomain(domain string) CookieStoreOption {
	return func(s *CookieStore) {
		if domain != "" {
			s.opts = append(s.opts, cookie.WithDomain(domain))
		}
	}
}

// WithCookieOptions appends raw cookie attributes.
func WithCookieOptions(opts ...cookie.Option) CookieStoreOption {
	return func(s *CookieStore) {
		s.opts = append(s.opts, opts...)
	}
}

// WithSignedCookie signs the cookie value. Tampered cookies load as unset.
// It requires a cookie manager with at least one secret.
func WithSignedCookie() CookieStoreOption {
	return func(s *CookieStore) {
		s.signed = true
	}
}

// NewCookieStore creates a cookie backed store. A nil manager uses a plain
// manager with default attributes.
func NewCookieStore(cookies *cookie.Manager, opts ...CookieStoreOption) (*CookieStore, error) {
	if cookies == nil {
		var err error
		if cookies, err = cookie.New(nil); err != nil {
			return nil, err
		}
	}

	s := &CookieStore{
		cookies: cookies,
		name:    DefaultCookieName,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.signed && !cookies.CanSign() {
		return nil, ErrSigningUnavailable
	}
	return s, nil
}

// Load returns the preference stored in the cookie.
func (s *CookieStore) Load(r *http.Request) (Preference, bool) {
	var (
		value string
		err   error
	)
	if s.signed {
		value, err = s.cookies.GetSigned(r, s.name)
	} else {
		value, err = s.cookies.Get(r, s.name)
	}
	if err != nil {
		return "", false
	}
	return Parse(value)
}

// Save writes p to the cookie.
func (s *CookieStore) Save(w http.ResponseWriter, _ *http.Request, p Preference) error {
	if !p.Valid() {
		return ErrInvalidPreference
	}
	if s.signed {
		return s.cookies.SetSigned(w, s.name, p.String(), s.opts...)
	}
	s.cookies.Set(w, s.name, p.String(), s.opts...)
	return nil
}
