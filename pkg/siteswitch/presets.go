package siteswitch

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/sitekit/pkg/sitepref"
	"github.com/dmitrymomot/sitekit/pkg/siteurl"
)

// MDot creates a switcher for a normal site on serverName and a mobile site
// on "m." + serverName. The preference cookie is shared by both hosts.
func MDot(serverName string, opts ...Option) (*Switcher, error) {
	server, err := normalizeServer(serverName)
	if err != nil {
		return nil, err
	}
	return Standard(server, "m."+server, "", "."+server, opts...)
}

// DotMobi creates a switcher for a normal site on serverName and a mobile
// site on the same name with its top-level domain replaced by ".mobi":
// example.com and example.mobi.
func DotMobi(serverName string, opts ...Option) (*Switcher, error) {
	server, err := normalizeServer(serverName)
	if err != nil {
		return nil, err
	}
	dot := strings.LastIndexByte(server, '.')
	if dot <= 0 {
		return nil, fmt.Errorf("%w: %q has no top-level domain", ErrInvalidServer, serverName)
	}
	return Standard(server, server[:dot]+".mobi", "", "."+server, opts...)
}

// Standard creates a host based switcher. tabletServer and cookieDomain are
// optional.
func Standard(normalServer, mobileServer, tabletServer, cookieDomain string, opts ...Option) (*Switcher, error) {
	normal, err := siteurl.NewHostFactory(normalServer)
	if err != nil {
		return nil, fmt.Errorf("%w: normal: %w", ErrInvalidServer, err)
	}
	mobile, err := siteurl.NewHostFactory(mobileServer)
	if err != nil {
		return nil, fmt.Errorf("%w: mobile: %w", ErrInvalidServer, err)
	}

	preset := []Option{
		WithNormalFactory(normal),
		WithMobileFactory(mobile),
		WithCookieStoreOptions(sitepref.WithCookieDomain(cookieDomain)),
	}
	if strings.TrimSpace(tabletServer) != "" {
		tablet, err := siteurl.NewHostFactory(tabletServer)
		if err != nil {
			return nil, fmt.Errorf("%w: tablet: %w", ErrInvalidServer, err)
		}
		preset = append(preset, WithTabletFactory(tablet))
	}

	return New(append(preset, opts...)...)
}

// URLPath creates a switcher where all variants share a host and differ by
// path prefix. tabletPath and rootPath are optional.
func URLPath(mobilePath, tabletPath, rootPath string, opts ...Option) (*Switcher, error) {
	var pathOpts []siteurl.PathOption
	if strings.TrimSpace(rootPath) != "" {
		pathOpts = append(pathOpts, siteurl.WithRootPath(rootPath))
	}

	normal, err := siteurl.NewNormalPathFactory(mobilePath, tabletPath, pathOpts...)
	if err != nil {
		return nil, err
	}
	mobile, err := siteurl.NewMobilePathFactory(mobilePath, tabletPath, pathOpts...)
	if err != nil {
		return nil, err
	}

	preset := []Option{
		WithNormalFactory(normal),
		WithMobileFactory(mobile),
		WithCookieStoreOptions(),
	}
	if strings.TrimSpace(tabletPath) != "" {
		tablet, err := siteurl.NewTabletPathFactory(mobilePath, tabletPath, pathOpts...)
		if err != nil {
			return nil, err
		}
		preset = append(preset, WithTabletFactory(tablet))
	}

	return New(append(preset, opts...)...)
}

func normalizeServer(serverName string) (string, error) {
	server := strings.ToLower(strings.TrimSpace(serverName))
	if server == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidServer)
	}
	return server, nil
}
