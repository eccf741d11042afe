package siteurl

import "strings"

// PathFactory identifies a site variant by a path prefix on the same host,
// e.g. "/m/" for mobile and "/t/" for tablet. The normal variant is anything
// outside those prefixes.
//
// An optional root path is held constant in front of every variant prefix:
// with root "/app/" the mobile site lives under "/app/m/" and the normal site
// under "/app/".
type PathFactory struct {
	site       Site
	mobilePath string // "/m/" or "" when not configured
	tabletPath string
	rootPath   string // "/app" without trailing slash, "" for no root
}

// PathOption configures a PathFactory.
type PathOption func(*PathFactory)

// WithRootPath sets the application root path shared by all variants.
func WithRootPath(root string) PathOption {
	return func(f *PathFactory) {
		f.rootPath = strings.TrimSuffix(formatPath(root), "/")
	}
}

// NewNormalPathFactory creates the factory for the normal variant. At least
// one of mobilePath and tabletPath must be set.
func NewNormalPathFactory(mobilePath, tabletPath string, opts ...PathOption) (*PathFactory, error) {
	return newPathFactory(SiteNormal, mobilePath, tabletPath, opts)
}

// NewMobilePathFactory creates the factory for the mobile variant.
// tabletPath may be empty for deployments without a tablet site.
func NewMobilePathFactory(mobilePath, tabletPath string, opts ...PathOption) (*PathFactory, error) {
	return newPathFactory(SiteMobile, mobilePath, tabletPath, opts)
}

// NewTabletPathFactory creates the factory for the tablet variant.
// mobilePath may be empty for deployments without a mobile site.
func NewTabletPathFactory(mobilePath, tabletPath string, opts ...PathOption) (*PathFactory, error) {
	return newPathFactory(SiteTablet, mobilePath, tabletPath, opts)
}

func newPathFactory(site Site, mobilePath, tabletPath string, opts []PathOption) (*PathFactory, error) {
	f := &PathFactory{
		site:       site,
		mobilePath: formatPath(mobilePath),
		tabletPath: formatPath(tabletPath),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.mobilePath == "/" || f.tabletPath == "/" {
		return nil, ErrEmptyPath
	}
	switch site {
	case SiteMobile:
		if f.mobilePath == "" {
			return nil, ErrEmptyPath
		}
	case SiteTablet:
		if f.tabletPath == "" {
			return nil, ErrEmptyPath
		}
	default:
		if f.mobilePath == "" && f.tabletPath == "" {
			return nil, ErrEmptyPath
		}
	}
	if f.mobilePath != "" && f.mobilePath == f.tabletPath {
		return nil, ErrPathConflict
	}
	return f, nil
}

// Site returns the variant this factory serves.
func (f *PathFactory) Site() Site { return f.site }

// IsRequestForSite reports whether the request path lies under this variant.
func (f *PathFactory) IsRequestForSite(loc Location) bool {
	onMobile := f.mobilePath != "" && underPrefix(loc.Path, f.rootPath+f.mobilePath)
	onTablet := f.tabletPath != "" && underPrefix(loc.Path, f.rootPath+f.tabletPath)

	switch f.site {
	case SiteMobile:
		return onMobile
	case SiteTablet:
		return onTablet
	default:
		return !onMobile && !onTablet
	}
}

// CreateSiteURL rewrites the request path onto this variant, removing any
// other variant prefix and keeping host, scheme, port, root path and query.
func (f *PathFactory) CreateSiteURL(loc Location) string {
	rest := loc.Path
	if f.rootPath != "" && underPrefix(rest, f.rootPath+"/") {
		rest = rest[len(f.rootPath):]
	}
	switch {
	case f.mobilePath != "" && underPrefix(rest, f.mobilePath):
		rest = stripPrefix(rest, f.mobilePath)
	case f.tabletPath != "" && underPrefix(rest, f.tabletPath):
		rest = stripPrefix(rest, f.tabletPath)
	}
	if rest == "" {
		rest = "/"
	}

	var path string
	switch f.site {
	case SiteMobile:
		path = f.rootPath + strings.TrimSuffix(f.mobilePath, "/") + rest
	case SiteTablet:
		path = f.rootPath + strings.TrimSuffix(f.tabletPath, "/") + rest
	default:
		path = f.rootPath + rest
	}
	return loc.URL(loc.Host, path)
}

// formatPath normalizes p to "/p/". Blank input yields "".
func formatPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// underPrefix reports whether path is prefix ("/m/") or lies beneath it.
// The bare form without trailing slash ("/m") also matches.
func underPrefix(path, prefix string) bool {
	return strings.HasPrefix(path, prefix) || path == strings.TrimSuffix(prefix, "/")
}

// stripPrefix removes a "/m/" style prefix from rest, keeping the leading slash.
func stripPrefix(rest, prefix string) string {
	if prefix == "" || !underPrefix(rest, prefix) {
		return rest
	}
	return rest[len(prefix)-1:]
}
