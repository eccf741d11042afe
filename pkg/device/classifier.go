package device

import (
	"net/http"
	"strings"
)

// Classifier resolves the device class of a request from its user agent and headers.
// It holds only immutable lookup tables and is safe for concurrent use.
type Classifier struct {
	normalKeywords keywordSet
	tabletKeywords keywordSet
	mobileKeywords keywordSet
	mobilePrefixes keywordSet
	fallback       Class
}

// NewClassifier creates a classifier using the default tables adjusted by opts.
func NewClassifier(opts ...Option) *Classifier {
	cfg := &config{
		rules:    DefaultRules(),
		fallback: Normal,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Classifier{
		normalKeywords: newKeywordSet(cfg.rules.NormalKeywords...),
		tabletKeywords: newKeywordSet(append(cfg.rules.TabletKeywords, cfg.extraTablet...)...),
		mobileKeywords: newKeywordSet(append(cfg.rules.MobileKeywords, cfg.extraMobile...)...),
		mobilePrefixes: newKeywordSet(cfg.rules.MobilePrefixes...),
		fallback:       cfg.fallback,
	}
}

// ClassifyRequest classifies r using its User-Agent and the rest of its headers.
func (c *Classifier) ClassifyRequest(r *http.Request) Device {
	return c.Classify(r.UserAgent(), r.Header)
}

// Classify determines the device for the given user agent and headers.
// An empty user agent skips all UA-based rules. Rules are evaluated in a fixed
// order and the first match wins: normal keywords, tablet detection, WAP
// profile headers, UA prefix table, WAP Accept header, mobile keywords and
// finally Opera Mini header names.
func (c *Classifier) Classify(userAgent string, header http.Header) Device {
	ua := strings.ToLower(userAgent)

	if ua != "" && c.normalKeywords.contains(ua) {
		return Device{Class: Normal}
	}

	// Android phones carry "Mobile" in the UA, tablets generally omit it.
	// Silk is the Kindle Fire browser.
	if ua != "" {
		if strings.Contains(ua, "android") && !strings.Contains(ua, "mobile") {
			return Device{Class: Tablet, Platform: platformOf(ua)}
		}
		if strings.Contains(ua, "silk") && !strings.Contains(ua, "mobile") {
			return Device{Class: Tablet, Platform: platformOf(ua)}
		}
		if c.tabletKeywords.contains(ua) {
			return Device{Class: Tablet, Platform: platformOf(ua)}
		}
	}

	if hasHeader(header, "x-wap-profile") || hasHeader(header, "Profile") {
		return Device{Class: Mobile, Platform: platformOf(ua)}
	}

	if len(ua) >= 4 && c.mobilePrefixes.has(ua[:4]) {
		return Device{Class: Mobile, Platform: platformOf(ua)}
	}

	if header != nil && strings.Contains(header.Get("Accept"), "wap") {
		return Device{Class: Mobile, Platform: platformOf(ua)}
	}

	if ua != "" && c.mobileKeywords.contains(ua) {
		return Device{Class: Mobile, Platform: platformOf(ua)}
	}

	// Opera Mini proxies announce themselves through X-OperaMini-* headers.
	// Names are compared lower-cased since net/http canonicalizes them.
	for name := range header {
		if strings.Contains(strings.ToLower(name), "operamini") {
			return Device{Class: Mobile, Platform: platformOf(ua)}
		}
	}

	return Device{Class: c.fallback}
}

// platformOf detects the OS family of an already lower-cased UA.
func platformOf(lowerUA string) Platform {
	switch {
	case strings.Contains(lowerUA, "android"):
		return PlatformAndroid
	case strings.Contains(lowerUA, "iphone"),
		strings.Contains(lowerUA, "ipad"),
		strings.Contains(lowerUA, "ipod"):
		return PlatformIOS
	default:
		return PlatformUnknown
	}
}

func hasHeader(h http.Header, name string) bool {
	if h == nil {
		return false
	}
	_, ok := h[http.CanonicalHeaderKey(name)]
	return ok
}
