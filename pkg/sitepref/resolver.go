package sitepref

import (
	"log/slog"
	"net/http"
)

// DefaultParamName is the query parameter carrying an explicit preference.
const DefaultParamName = "site_preference"

// Resolver determines the effective site preference of a request.
//
// An explicit query parameter always wins and is saved to the store. Without
// one, the stored value is returned. The resolver never falls back to the
// device class: callers decide what an unset preference means.
type Resolver struct {
	store     Store
	paramName string
	logger    *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithParamName overrides DefaultParamName.
func WithParamName(name string) ResolverOption {
	return func(r *Resolver) {
		if name != "" {
			r.paramName = name
		}
	}
}

// WithLogger sets the logger used to report store failures.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver creates a resolver backed by store.
func NewResolver(store Store, opts ...ResolverOption) (*Resolver, error) {
	if store == nil {
		return nil, ErrNoStore
	}

	r := &Resolver{
		store:     store,
		paramName: DefaultParamName,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve returns the preference for the request, or ok == false when the
// user has expressed none. Unrecognized parameter values are ignored.
func (res *Resolver) Resolve(w http.ResponseWriter, r *http.Request) (Preference, bool) {
	if p, ok := Parse(r.URL.Query().Get(res.paramName)); ok {
		if err := res.store.Save(w, r, p); err != nil {
			res.logger.ErrorContext(r.Context(), "failed to save site preference",
				slog.String("component", "sitepref"),
				slog.String("site_preference", p.String()),
				slog.Any("error", err),
			)
		}
		return p, true
	}

	return res.store.Load(r)
}
