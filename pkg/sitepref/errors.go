package sitepref

import "errors"

var (
	ErrInvalidPreference  = errors.New("sitepref.invalid_preference")
	ErrSigningUnavailable = errors.New("sitepref.signing_unavailable")
	ErrNoRedisClient      = errors.New("sitepref.no_redis_client")
	ErrSaveFailed         = errors.New("sitepref.save_failed")
	ErrNoStore            = errors.New("sitepref.no_store")
	ErrNilResolver        = errors.New("sitepref.nil_resolver")
)
