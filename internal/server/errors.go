// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated: the handlers carry neither an HTTP nor a gRPC transport.
	errNoServersAreCreated = errors.New("no transport to serve the front controller")
	errNoServersToRun      = errors.New("no listeners to run")
)
