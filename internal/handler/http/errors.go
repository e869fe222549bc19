// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoSession is returned when a handler that needs a session runs
	// outside the session middleware.
	ErrNoSession = errors.New("request has no session")

	// ErrBootstrapPanic wraps a value recovered during the bootstrap stage.
	ErrBootstrapPanic = errors.New("panic during bootstrap")

	// ErrUnsafeRedirect is returned for redirect targets that leave the site.
	ErrUnsafeRedirect = errors.New("redirect target is not local")
)
