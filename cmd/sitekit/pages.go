package main

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/sitekit/pkg/device"
	"github.com/dmitrymomot/sitekit/pkg/sitepref"
)

// homePage renders the landing page of one site variant with links that
// switch the preference.
func homePage(variant string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		d, _ := device.FromContext(ctx)
		pref := "none"
		if p, ok := sitepref.FromContext(ctx); ok {
			pref = p.String()
		}

		_, err := fmt.Fprintf(w, `<!doctype html>
<html>
<head><meta name="viewport" content="width=device-width, initial-scale=1"><title>sitekit</title></head>
<body data-site=%q>
<h1>%s site</h1>
<p>Device: %s</p>
<p>Site preference: %s</p>
<nav>
<a href="?site_preference=normal">Normal</a>
<a href="?site_preference=mobile">Mobile</a>
<a href="?site_preference=tablet">Tablet</a>
</nav>
</body>
</html>
`, variant, templ.EscapeString(variant), templ.EscapeString(d.String()), templ.EscapeString(pref))
		return err
	})
}
