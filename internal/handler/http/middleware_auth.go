package http

import "net/http"

// auth is an HTTP middleware that lets only authenticated visitors through.
// Everybody else is redirected to the login page by the
// [AuthenticationManager], which also remembers the requested location.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, ok := h.authManager.EnsureAuthentication(w, r)
		if !ok {
			return
		}
		next.ServeHTTP(w, r)
	})
}
