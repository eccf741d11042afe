package siteswitch

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/sitekit/pkg/logger"
	"github.com/dmitrymomot/sitekit/pkg/sitepref"
	"github.com/dmitrymomot/sitekit/pkg/view"
)

// ErrorHandler writes the response when the switcher cannot decide.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type middlewareConfig struct {
	code         int
	errorHandler ErrorHandler
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithRedirectCode sets the status used for redirects. Codes outside the
// 3xx range are ignored.
func WithRedirectCode(code int) MiddlewareOption {
	return func(c *middlewareConfig) {
		if code >= 300 && code < 400 {
			c.code = code
		}
	}
}

// WithErrorHandler replaces the default handler, which responds with 500.
func WithErrorHandler(h ErrorHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Middleware redirects requests that belong to another site variant and
// stores the resolved preference in the context of the rest.
//
// DataStar requests are redirected through a server-sent event instead of a
// 3xx response. It must run after device.Middleware.
func Middleware(sw *Switcher, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if sw == nil {
		panic(ErrNilSwitcher)
	}

	cfg := &middlewareConfig{
		code:         http.StatusFound,
		errorHandler: defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			dec, err := sw.Decide(w, r)
			if err != nil {
				if errors.Is(err, ErrNoDevice) {
					sw.logger.ErrorContext(r.Context(), "site switcher used without device middleware",
						logger.Component("siteswitch"),
						logger.Error(err),
					)
				}
				cfg.errorHandler(w, r, err)
				return
			}

			if dec.Redirect {
				sw.logger.DebugContext(r.Context(), "redirecting to site variant",
					logger.Component("siteswitch"),
					logger.Device(dec.Device),
					logger.Preference(dec.Preference.String()),
					logger.Site(dec.Target),
					logger.RedirectURL(dec.URL),
				)
				redirect(w, r, dec.URL, cfg.code, sw)
				return
			}

			if dec.HasPreference {
				r = r.WithContext(sitepref.WithPreference(r.Context(), dec.Preference))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func redirect(w http.ResponseWriter, r *http.Request, url string, code int, sw *Switcher) {
	if err := view.Redirect(w, r, url, code); err != nil {
		sw.logger.ErrorContext(r.Context(), "failed to send datastar redirect",
			logger.Component("siteswitch"),
			logger.RedirectURL(url),
			logger.Error(err),
		)
	}
}
