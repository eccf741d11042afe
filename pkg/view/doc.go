// Package view maps logical view names to device specific ones and renders
// the matching templ component.
//
// With a mobile prefix of "mobile/" the logical view "home" becomes
// "mobile/home" for phones, or for anyone whose site preference is mobile.
// Names starting with "redirect:" or "forward:" are never decorated.
//
//	adapter := view.NewAdapter(view.WithMobilePrefix("mobile/"), view.WithTabletPrefix("tablet/"))
//	rn := view.NewRenderer(adapter,
//	    view.WithView("home", pages.Home()),
//	    view.WithView("mobile/home", pages.MobileHome()),
//	)
//	err := rn.Render(w, r, "home")
package view
