// Package siteswitch redirects requests between the normal, mobile and tablet
// variants of a site.
//
// For every request the Switcher combines three inputs: the device class put
// in the context by device.Middleware, the site preference resolved by
// sitepref.Resolver, and the variant the request is already addressed to as
// reported by the configured siteurl factories. An explicit preference wins
// over the device class. A request is never redirected to the variant it is
// already on, and variants without a factory are never redirect targets.
//
// Presets cover the usual layouts:
//
//	sw, err := siteswitch.MDot("example.com")          // example.com, m.example.com
//	sw, err := siteswitch.DotMobi("example.com")       // example.com, example.mobi
//	sw, err := siteswitch.URLPath("m", "t", "")        // /, /m/, /t/
//	sw, err := siteswitch.Standard("example.com", "m.example.com", "t.example.com", ".example.com")
//
// Middleware wires the decision into a router:
//
//	r := chi.NewRouter()
//	r.Use(device.Middleware(nil))
//	r.Use(siteswitch.Middleware(sw))
package siteswitch
