package siteurl

import (
	"net"
	"net/http"
	"strconv"
	"strings"
)

// Location is the address of the current request as seen by the client.
type Location struct {
	Scheme   string // "http" or "https"
	Host     string // host name without port
	Port     int    // 0 when the request did not name a port
	Path     string // escaped form, always starts with "/"
	RawQuery string // encoded query without "?"
}

// LocationOption configures LocationFromRequest.
type LocationOption func(*locationConfig)

type locationConfig struct {
	trustForwarded bool
}

// WithForwardedHeaders makes LocationFromRequest honor X-Forwarded-Proto and
// X-Forwarded-Host. Only enable it behind a proxy that sets them.
func WithForwardedHeaders() LocationOption {
	return func(c *locationConfig) { c.trustForwarded = true }
}

// LocationFromRequest extracts the client-visible location of r.
func LocationFromRequest(r *http.Request, opts ...LocationOption) Location {
	cfg := &locationConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	scheme := "http"
	switch {
	case r.URL != nil && r.URL.Scheme != "":
		scheme = strings.ToLower(r.URL.Scheme)
	case r.TLS != nil:
		scheme = "https"
	}

	hostport := r.Host
	if hostport == "" && r.URL != nil {
		hostport = r.URL.Host
	}

	if cfg.trustForwarded {
		if proto := firstValue(r.Header.Get("X-Forwarded-Proto")); proto == "http" || proto == "https" {
			scheme = proto
		}
		if fh := firstValue(r.Header.Get("X-Forwarded-Host")); fh != "" {
			hostport = fh
		}
	}

	host, port := splitHostPort(hostport)

	loc := Location{
		Scheme: scheme,
		Host:   host,
		Port:   port,
		Path:   "/",
	}
	if r.URL != nil {
		if p := r.URL.EscapedPath(); p != "" {
			loc.Path = p
		}
		loc.RawQuery = r.URL.RawQuery
	}
	return loc
}

// Authority returns host[:port], omitting the port when it is the default
// for the scheme.
func (l Location) Authority(host string) string {
	if l.Port == 0 || l.Port == DefaultPort(l.Scheme) {
		return host
	}
	return net.JoinHostPort(host, strconv.Itoa(l.Port))
}

// URL builds an absolute URL on host with the given escaped path, preserving
// the location's scheme, non-default port and query string.
func (l Location) URL(host, path string) string {
	var b strings.Builder
	b.WriteString(l.Scheme)
	b.WriteString("://")
	b.WriteString(l.Authority(host))
	b.WriteString(path)
	if l.RawQuery != "" {
		b.WriteByte('?')
		b.WriteString(l.RawQuery)
	}
	return b.String()
}

// DefaultPort returns 80 for http, 443 for https and 0 otherwise.
func DefaultPort(scheme string) int {
	switch scheme {
	case "http":
		return 80
	case "https":
		return 443
	}
	return 0
}

func splitHostPort(hostport string) (string, int) {
	host, portStr, err := net.SplitHostPort(hostport)
	if err != nil {
		// No port, or a bare IPv6 literal.
		return strings.ToLower(strings.Trim(hostport, "[]")), 0
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return strings.ToLower(host), 0
	}
	return strings.ToLower(host), port
}

func firstValue(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.ToLower(strings.TrimSpace(v))
}
