// Package device classifies HTTP requests as coming from a normal (desktop),
// mobile or tablet device.
//
// Classification is heuristic: the lower-cased User-Agent is matched against
// small keyword and prefix tables, and a few headers (x-wap-profile, Profile,
// Accept, X-OperaMini-*) are inspected. Rules are applied in a fixed order and
// the first match wins:
//
//  1. normal keywords (operator overrides, empty by default)
//  2. tablets: "android" or "silk" without "mobile", or a tablet keyword
//  3. WAP profile headers
//  4. the four-character UA prefix table
//  5. an Accept header mentioning "wap"
//  6. mobile keywords
//  7. Opera Mini header names
//  8. the fallback class (Normal unless configured)
//
// Tablet rules run before mobile ones because many tablet user agents also
// contain mobile tokens.
//
// # Usage
//
//	c := device.NewClassifier(device.WithNormalKeywords("desktop-mode"))
//	d := c.Classify(r.UserAgent(), r.Header)
//	if d.IsTablet() {
//	    // ...
//	}
//
// The Middleware stores the result in the request context:
//
//	r := chi.NewRouter()
//	r.Use(device.Middleware(c))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    d, _ := device.FromContext(r.Context())
//	    fmt.Fprintln(w, d.Class)
//	})
//
// # Custom tables
//
// Tables live on the Classifier, never in mutable package state. Replace them
// with WithRules, or load them from YAML with LoadRules / LoadRulesFile.
package device
