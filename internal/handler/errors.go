// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransports means the server config names neither an HTTP nor a gRPC
// address, so the front controller would have nothing to listen on.
var errNoTransports = errors.New("neither http nor grpc address is configured")
