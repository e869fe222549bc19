// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] meant to be registered as
// the router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// The route is looked up by its pattern relative to the mount point of
// router. A known route answers 405 with an Allow header listing its
// methods; anything else answers 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		routePath := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePath != "" {
			routePath = rctx.RoutePath
		}

		var allowed []string
		for _, route := range router.Routes() {
			if route.Pattern != routePath {
				continue
			}
			for method := range route.Handlers {
				if method != "*" && !slices.Contains(allowed, method) {
					allowed = append(allowed, method)
				}
			}
		}

		if len(allowed) == 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		slices.Sort(allowed)
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
