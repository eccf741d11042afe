package device

import "errors"

var (
	ErrUnknownClass = errors.New("device.unknown_class")
	ErrInvalidRules = errors.New("device.invalid_rules")
	ErrNoDevice     = errors.New("device.not_in_context")
)
