package view

import (
	"context"
	"strings"

	"github.com/dmitrymomot/sitekit/pkg/device"
	"github.com/dmitrymomot/sitekit/pkg/sitepref"
)

const (
	RedirectPrefix = "redirect:"
	ForwardPrefix  = "forward:"
)

type affix struct {
	prefix, suffix string
}

func (a affix) apply(name string) string {
	adjusted := a.prefix + name + a.suffix
	if strings.HasSuffix(adjusted, "//") {
		adjusted = adjusted[:len(adjusted)-1]
	}
	return adjusted
}

// Adapter decorates logical view names with a per-variant prefix and suffix.
// The zero value leaves names unchanged.
type Adapter struct {
	normal affix
	mobile affix
	tablet affix
}

// Option configures an Adapter.
type Option func(*Adapter)

func WithNormalPrefix(p string) Option { return func(a *Adapter) { a.normal.prefix = p } }
func WithNormalSuffix(s string) Option { return func(a *Adapter) { a.normal.suffix = s } }
func WithMobilePrefix(p string) Option { return func(a *Adapter) { a.mobile.prefix = p } }
func WithMobileSuffix(s string) Option { return func(a *Adapter) { a.mobile.suffix = s } }
func WithTabletPrefix(p string) Option { return func(a *Adapter) { a.tablet.prefix = p } }
func WithTabletSuffix(s string) Option { return func(a *Adapter) { a.tablet.suffix = s } }

func NewAdapter(opts ...Option) *Adapter {
	a := &Adapter{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Adjust returns the view name to render for the given device class and
// preference. A set preference wins over the device class. Names starting
// with "redirect:" or "forward:" are returned unchanged.
func (a *Adapter) Adjust(name string, class device.Class, pref sitepref.Preference, hasPref bool) string {
	if IsDirective(name) {
		return name
	}

	if hasPref && pref.Valid() {
		switch pref {
		case sitepref.Mobile:
			return a.mobile.apply(name)
		case sitepref.Tablet:
			return a.tablet.apply(name)
		default:
			return a.normal.apply(name)
		}
	}

	switch class {
	case device.Mobile:
		return a.mobile.apply(name)
	case device.Tablet:
		return a.tablet.apply(name)
	default:
		return a.normal.apply(name)
	}
}

// AdjustContext is Adjust with the device and preference taken from ctx.
// A missing device counts as normal.
func (a *Adapter) AdjustContext(ctx context.Context, name string) string {
	d, _ := device.FromContext(ctx)
	pref, ok := sitepref.FromContext(ctx)
	return a.Adjust(name, d.Class, pref, ok)
}

// IsDirective reports whether name is a redirect or forward directive.
func IsDirective(name string) bool {
	return strings.HasPrefix(name, RedirectPrefix) || strings.HasPrefix(name, ForwardPrefix)
}
