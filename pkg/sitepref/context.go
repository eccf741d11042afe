package sitepref

import "context"

type contextKey struct{}

// WithPreference stores the resolved preference in the context.
func WithPreference(ctx context.Context, p Preference) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the preference stored in the context. It reports
// ok == false when the user has no preference or resolution did not run.
func FromContext(ctx context.Context) (Preference, bool) {
	if ctx == nil {
		return "", false
	}
	p, _ := ctx.Value(contextKey{}).(Preference)
	return p, p.Valid()
}
