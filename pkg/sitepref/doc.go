// Package sitepref resolves and remembers which site variant (normal, mobile
// or tablet) a user explicitly asked for.
//
// A preference is either set or absent. Absence ("no opinion") is different
// from Normal and is reported through an ok flag rather than a zero value.
//
// # Resolution
//
// The Resolver looks at the site_preference query parameter first
// (case-insensitive: normal, mobile, tablet). A valid value is saved to the
// Store and returned. Otherwise the stored value, if any, is returned.
// Malformed parameters and corrupted stored values are treated as absent.
//
// # Stores
//
//   - CookieStore keeps the enum name (NORMAL, MOBILE, TABLET) in a cookie,
//     optionally signed, scoped to a configurable domain.
//   - RedisStore keeps the value in Redis keyed by an anonymous visitor id.
//
// # Usage
//
//	store, _ := sitepref.NewCookieStore(nil, sitepref.WithCookieDomain(".example.com"))
//	res, _ := sitepref.NewResolver(store)
//
//	r := chi.NewRouter()
//	r.Use(sitepref.Middleware(res))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    if p, ok := sitepref.FromContext(r.Context()); ok {
//	        fmt.Fprintln(w, p)
//	    }
//	})
package sitepref
