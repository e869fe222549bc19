// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/service"
	"github.com/MKhiriev/go-crm-front/internal/utils"
	"github.com/MKhiriev/go-crm-front/models"
)

// withSession loads the visitor session named by the session cookie, or
// starts a new one, and stores it in the request context. A modified
// session is saved after the handler returns; its cookie is sent with the
// response headers.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		var session *models.Session
		if cookie, err := r.Cookie(h.sessionCfg.CookieName); err == nil {
			loaded, err := h.services.SessionService.Load(ctx, cookie.Value)
			switch {
			case err == nil:
				session = loaded
			case errors.Is(err, service.ErrSessionNotFound):
				log.Debug().Msg("unknown or expired session cookie")
			default:
				log.Err(err).Msg("error loading session")
			}
		}
		if session == nil {
			session = h.services.SessionService.Start(ctx)
		}

		sw := &sessionResponseWriter{
			ResponseWriter: w,
			session:        session,
			cookie:         h.sessionCookie,
		}
		next.ServeHTTP(sw, r.WithContext(utils.WithSession(ctx, session)))

		if err := h.services.SessionService.Save(ctx, session); err != nil {
			log.Err(err).Str("session", session.ID).Msg("error saving session")
		}
	})
}

func (h *Handler) sessionCookie(session *models.Session) *http.Cookie {
	return &http.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    session.ID,
		Path:     h.cookiePath(),
		MaxAge:   int(h.sessionCfg.TTL / time.Second),
		HttpOnly: true,
		Secure:   h.sessionCfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *Handler) expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    "",
		Path:     h.cookiePath(),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.sessionCfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *Handler) cookiePath() string {
	if h.cfg.RootPath == "" {
		return "/"
	}
	return h.cfg.RootPath
}

// sessionResponseWriter sets the session cookie right before the headers
// go out, if the session was modified by then.
type sessionResponseWriter struct {
	http.ResponseWriter

	session     *models.Session
	cookie      func(*models.Session) *http.Cookie
	wroteHeader bool
}

func (w *sessionResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		if w.session.Dirty() {
			http.SetCookie(w.ResponseWriter, w.cookie(w.session))
		}
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *sessionResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *sessionResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
