package siteurl

// Site identifies a site variant.
type Site int

const (
	SiteNormal Site = iota
	SiteMobile
	SiteTablet
)

func (s Site) String() string {
	switch s {
	case SiteMobile:
		return "mobile"
	case SiteTablet:
		return "tablet"
	default:
		return "normal"
	}
}

// Factory recognizes and builds addresses for one site variant.
type Factory interface {
	// IsRequestForSite reports whether loc is already addressed to this variant.
	IsRequestForSite(loc Location) bool

	// CreateSiteURL returns the absolute URL of the equivalent address on this variant.
	CreateSiteURL(loc Location) string
}
