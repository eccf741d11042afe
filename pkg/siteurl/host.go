package siteurl

import "strings"

// HostFactory identifies a site variant by its host name, e.g. "m.example.com".
type HostFactory struct {
	serverName string
}

// NewHostFactory creates a factory for the variant served on serverName.
func NewHostFactory(serverName string) (*HostFactory, error) {
	serverName = strings.ToLower(strings.TrimSpace(serverName))
	if serverName == "" {
		return nil, ErrEmptyServerName
	}
	return &HostFactory{serverName: serverName}, nil
}

// ServerName returns the configured host name.
func (f *HostFactory) ServerName() string { return f.serverName }

// IsRequestForSite reports whether the request host equals the server name.
func (f *HostFactory) IsRequestForSite(loc Location) bool {
	return strings.EqualFold(loc.Host, f.serverName)
}

// CreateSiteURL keeps scheme, non-default port, path and query, and swaps the host.
func (f *HostFactory) CreateSiteURL(loc Location) string {
	return loc.URL(f.serverName, loc.Path)
}
