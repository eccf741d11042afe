package sitepref

import "net/http"

// Middleware resolves the site preference of every request and stores it in
// the request context. Requests without a preference pass through unchanged.
func Middleware(res *Resolver) func(http.Handler) http.Handler {
	if res == nil {
		panic(ErrNilResolver)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p, ok := res.Resolve(w, r); ok {
				r = r.WithContext(WithPreference(r.Context(), p))
			}
			next.ServeHTTP(w, r)
		})
	}
}
