package siteurl

import "errors"

var (
	ErrEmptyServerName = errors.New("siteurl.empty_server_name")
	ErrEmptyPath       = errors.New("siteurl.empty_path")
	ErrPathConflict    = errors.New("siteurl.path_conflict")
)
