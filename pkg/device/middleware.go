package device

import "net/http"

// Middleware classifies every request and stores the result in its context.
// A nil classifier uses the default tables.
func Middleware(c *Classifier) func(http.Handler) http.Handler {
	if c == nil {
		c = NewClassifier()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := FromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}
			d := c.ClassifyRequest(r)
			next.ServeHTTP(w, r.WithContext(WithDevice(r.Context(), d)))
		})
	}
}
