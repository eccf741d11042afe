package device

// Option configures a Classifier.
type Option func(*config)

type config struct {
	rules       Rules
	extraTablet []string
	extraMobile []string
	fallback    Class
}

// WithRules replaces the built-in lookup tables.
func WithRules(rules Rules) Option {
	return func(c *config) {
		c.rules = rules
	}
}

// WithNormalKeywords sets keywords that force a Normal classification,
// e.g. a desktop-mode override token appended by a browser.
func WithNormalKeywords(keywords ...string) Option {
	return func(c *config) {
		c.rules.NormalKeywords = append(c.rules.NormalKeywords, keywords...)
	}
}

// WithExtraTabletKeywords adds keywords to the tablet table.
func WithExtraTabletKeywords(keywords ...string) Option {
	return func(c *config) {
		c.extraTablet = append(c.extraTablet, keywords...)
	}
}

// WithExtraMobileKeywords adds keywords to the mobile table.
func WithExtraMobileKeywords(keywords ...string) Option {
	return func(c *config) {
		c.extraMobile = append(c.extraMobile, keywords...)
	}
}

// WithFallback sets the class returned when no rule matches.
func WithFallback(class Class) Option {
	return func(c *config) {
		c.fallback = class
	}
}
