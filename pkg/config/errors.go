package config

import "errors"

var (
	ErrParsingConfig   = errors.New("config.parse_failed")
	ErrConfigNotLoaded = errors.New("config.not_loaded")
	ErrNilPointer      = errors.New("config.nil_pointer")
	ErrUnknownSiteMode = errors.New("config.unknown_site_mode")
	ErrUnknownStore    = errors.New("config.unknown_preference_store")
	ErrRedisRequired   = errors.New("config.redis_client_required")
)
