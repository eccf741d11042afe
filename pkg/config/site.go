package config

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sitekit/pkg/cookie"
	"github.com/dmitrymomot/sitekit/pkg/device"
	"github.com/dmitrymomot/sitekit/pkg/sitepref"
	"github.com/dmitrymomot/sitekit/pkg/siteswitch"
)

// Site layouts accepted in SITE_MODE.
const (
	ModeMDot     = "mdot"
	ModeDotMobi  = "dotmobi"
	ModeStandard = "standard"
	ModePath     = "path"
)

// Preference stores accepted in SITE_PREFERENCE_STORE.
const (
	StoreCookie = "cookie"
	StoreRedis  = "redis"
)

// Site configures device classification and site switching.
type Site struct {
	Mode string `env:"SITE_MODE" envDefault:"mdot"`

	// Host based layouts.
	ServerName   string `env:"SITE_SERVER_NAME" envDefault:"localhost"`
	MobileServer string `env:"SITE_MOBILE_SERVER"`
	TabletServer string `env:"SITE_TABLET_SERVER"`
	CookieDomain string `env:"SITE_COOKIE_DOMAIN"`

	// Path layout.
	MobilePath string `env:"SITE_MOBILE_PATH" envDefault:"m"`
	TabletPath string `env:"SITE_TABLET_PATH"`
	RootPath   string `env:"SITE_ROOT_PATH"`

	TabletIsMobile bool `env:"SITE_TABLET_IS_MOBILE" envDefault:"false"`
	TrustProxy     bool `env:"SITE_TRUST_PROXY" envDefault:"false"`
	RedirectCode   int  `env:"SITE_REDIRECT_CODE" envDefault:"302"`

	PreferenceStore string `env:"SITE_PREFERENCE_STORE" envDefault:"cookie"`
	PreferenceParam string `env:"SITE_PREFERENCE_PARAM" envDefault:"site_preference"`
	SignedCookie    bool   `env:"SITE_SIGNED_COOKIE" envDefault:"false"`

	NormalKeywords []string `env:"DEVICE_NORMAL_KEYWORDS" envSeparator:","`
	RulesFile      string   `env:"DEVICE_RULES_FILE"`
}

// Classifier builds the device classifier from RulesFile and NormalKeywords.
func (s Site) Classifier() (*device.Classifier, error) {
	var opts []device.Option
	if s.RulesFile != "" {
		rules, err := device.LoadRulesFile(s.RulesFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, device.WithRules(rules))
	}
	if len(s.NormalKeywords) > 0 {
		opts = append(opts, device.WithNormalKeywords(s.NormalKeywords...))
	}
	return device.NewClassifier(opts...), nil
}

// Switcher builds the site switcher for the configured layout. rdb is only
// required with the redis preference store. Extra opts are applied last.
func (s Site) Switcher(cookies *cookie.Manager, rdb goredis.UniversalClient, log *slog.Logger, opts ...siteswitch.Option) (*siteswitch.Switcher, error) {
	if log == nil {
		log = slog.Default()
	}

	store, err := s.store(cookies, rdb, log)
	if err != nil {
		return nil, err
	}
	res, err := sitepref.NewResolver(store,
		sitepref.WithParamName(s.PreferenceParam),
		sitepref.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	base := []siteswitch.Option{
		siteswitch.WithResolver(res),
		siteswitch.WithTabletIsMobile(s.TabletIsMobile),
		siteswitch.WithLogger(log),
	}
	if s.TrustProxy {
		base = append(base, siteswitch.WithForwardedHeaders())
	}
	opts = append(base, opts...)

	switch s.mode() {
	case ModeMDot:
		return siteswitch.MDot(s.ServerName, opts...)
	case ModeDotMobi:
		return siteswitch.DotMobi(s.ServerName, opts...)
	case ModeStandard:
		return siteswitch.Standard(s.ServerName, s.MobileServer, s.TabletServer, s.CookieDomain, opts...)
	case ModePath:
		return siteswitch.URLPath(s.MobilePath, s.TabletPath, s.RootPath, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSiteMode, s.Mode)
	}
}

// MiddlewareOptions returns the switcher middleware options for this config.
func (s Site) MiddlewareOptions() []siteswitch.MiddlewareOption {
	if s.RedirectCode == 0 {
		return nil
	}
	return []siteswitch.MiddlewareOption{siteswitch.WithRedirectCode(s.RedirectCode)}
}

func (s Site) mode() string {
	return strings.ToLower(strings.TrimSpace(s.Mode))
}

// cookieDomain is the domain shared by all variants of a host layout.
func (s Site) cookieDomain() string {
	if s.CookieDomain != "" {
		return s.CookieDomain
	}
	switch s.mode() {
	case ModeMDot, ModeDotMobi:
		return "." + strings.ToLower(strings.TrimSpace(s.ServerName))
	}
	return ""
}

func (s Site) store(cookies *cookie.Manager, rdb goredis.UniversalClient, log *slog.Logger) (sitepref.Store, error) {
	switch strings.ToLower(s.PreferenceStore) {
	case "", StoreCookie:
		opts := []sitepref.CookieStoreOption{sitepref.WithCookieDomain(s.cookieDomain())}
		if s.SignedCookie {
			opts = append(opts, sitepref.WithSignedCookie())
		}
		return sitepref.NewCookieStore(cookies, opts...)
	case StoreRedis:
		if rdb == nil {
			return nil, ErrRedisRequired
		}
		return sitepref.NewRedisStore(rdb, cookies,
			sitepref.WithVisitorCookieDomain(s.cookieDomain()),
			sitepref.WithStoreLogger(log),
		)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, s.PreferenceStore)
	}
}

// Validate reports configuration mistakes that would only surface at
// request time.
func (s Site) Validate() error {
	switch s.mode() {
	case ModeMDot, ModeDotMobi, ModeStandard, ModePath:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSiteMode, s.Mode)
	}
	if s.RedirectCode != 0 && (s.RedirectCode < http.StatusMultipleChoices || s.RedirectCode >= http.StatusBadRequest) {
		return fmt.Errorf("config: SITE_REDIRECT_CODE %d is not a redirect status", s.RedirectCode)
	}
	return nil
}
