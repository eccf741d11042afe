package view

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// Renderer renders templ components registered under view names, choosing
// the device specific variant through an Adapter.
type Renderer struct {
	adapter  *Adapter
	views    map[string]templ.Component
	fallback bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithView registers c under name.
func WithView(name string, c templ.Component) RendererOption {
	return func(rn *Renderer) {
		if name != "" && c != nil {
			rn.views[name] = c
		}
	}
}

// WithViews registers every component in views.
func WithViews(views map[string]templ.Component) RendererOption {
	return func(rn *Renderer) {
		for name, c := range views {
			WithView(name, c)(rn)
		}
	}
}

// WithFallback controls whether a missing device specific view falls back to
// the logical name. Enabled by default.
func WithFallback(enabled bool) RendererOption {
	return func(rn *Renderer) { rn.fallback = enabled }
}

// NewRenderer creates a renderer. A nil adapter leaves names unchanged.
func NewRenderer(adapter *Adapter, opts ...RendererOption) *Renderer {
	if adapter == nil {
		adapter = NewAdapter()
	}
	rn := &Renderer{
		adapter:  adapter,
		views:    make(map[string]templ.Component),
		fallback: true,
	}
	for _, opt := range opts {
		opt(rn)
	}
	return rn
}

// Lookup resolves name for the device and preference found in ctx. It
// returns the component and the name it was registered under.
func (rn *Renderer) Lookup(ctx context.Context, name string) (templ.Component, string, error) {
	adjusted := rn.adapter.AdjustContext(ctx, name)
	if c, ok := rn.views[adjusted]; ok {
		return c, adjusted, nil
	}
	if rn.fallback && adjusted != name {
		if c, ok := rn.views[name]; ok {
			return c, name, nil
		}
	}
	return nil, "", fmt.Errorf("%w: %s", ErrViewNotFound, adjusted)
}

// Render writes the view for name. DataStar requests receive the component
// as an element patch. A "redirect:" name redirects with 303 See Other.
func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, name string) error {
	if target, ok := strings.CutPrefix(name, RedirectPrefix); ok {
		return Redirect(w, r, target, http.StatusSeeOther)
	}
	if strings.HasPrefix(name, ForwardPrefix) {
		return fmt.Errorf("%w: %s", ErrUnsupportedDirective, name)
	}

	c, _, err := rn.Lookup(r.Context(), name)
	if err != nil {
		return err
	}

	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(c)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return c.Render(r.Context(), w)
}
