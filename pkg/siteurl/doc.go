// Package siteurl recognizes and builds URLs for the normal, mobile and
// tablet variants of a site.
//
// Two factory styles are provided:
//
//   - HostFactory: each variant has its own host name (m.example.com,
//     example.mobi). The request path and query are kept as is.
//   - PathFactory: all variants share a host and are told apart by a path
//     prefix (/m/, /t/) under an optional root path.
//
// Every factory satisfies the loop-free property: a URL produced by
// CreateSiteURL is recognized by IsRequestForSite on the same factory.
//
//	mobile, _ := siteurl.NewHostFactory("m.example.com")
//	loc := siteurl.LocationFromRequest(r)
//	if !mobile.IsRequestForSite(loc) {
//	    http.Redirect(w, r, mobile.CreateSiteURL(loc), http.StatusFound)
//	}
package siteurl
