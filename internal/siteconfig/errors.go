package siteconfig

import "errors"

var (
	// ErrNotInstalled is returned by [File.Load] when the file does not exist.
	ErrNotInstalled = errors.New("site configuration not found")
	// ErrInvalidSiteConfig is returned when the file cannot be decoded or a
	// field fails validation.
	ErrInvalidSiteConfig = errors.New("invalid site configuration")
	// ErrAlreadyInstalled is returned by [File.Create] when the file exists.
	ErrAlreadyInstalled = errors.New("site configuration already exists")
)
