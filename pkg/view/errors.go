package view

import "errors"

var (
	ErrViewNotFound         = errors.New("view.not_found")
	ErrUnsupportedDirective = errors.New("view.unsupported_directive")
)
