package siteswitch

import "errors"

var (
	ErrNoDevice        = errors.New("siteswitch.device_not_in_context")
	ErrNoMobileFactory = errors.New("siteswitch.no_mobile_factory")
	ErrNoResolver      = errors.New("siteswitch.no_resolver")
	ErrInvalidServer   = errors.New("siteswitch.invalid_server_name")
	ErrNilSwitcher     = errors.New("siteswitch.nil_switcher")
)
