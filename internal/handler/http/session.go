package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/service"
	"github.com/MKhiriev/go-crm-front/internal/utils"
	"github.com/MKhiriev/go-crm-front/models"
)

const logoutPath = "/session/end"

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	if location := r.URL.Query().Get(models.SessionKeyLocation); location != "" {
		if session, ok := utils.GetSessionFromContext(r.Context()); ok {
			session.Set(models.SessionKeyLocation, location)
		}
	}
	h.render(w, r, "login.html", http.StatusOK, viewData{Title: "Sign in"})
}

// login checks the submitted credentials, stores a signed token in the
// session and redirects to the remembered location or the dashboard.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Err(ErrNoSession).Send()
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	username := r.PostForm.Get("username")

	user, err := h.services.AuthService.Login(ctx, username, r.PostForm.Get("password"))
	if err != nil {
		if !errors.Is(err, service.ErrWrongPassword) && !errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Str("username", username).Msg("login failed")
		}
		form := r.PostForm
		form.Del("password")
		h.render(w, r, "login.html", statusFromError(err), viewData{
			Title: "Sign in",
			Error: userMessage(err),
			Form:  form,
		})
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error creating token")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err = h.services.SessionService.Renew(ctx, session); err != nil {
		log.Err(err).Str("session", session.ID).Msg("error renewing session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	session.Set(models.SessionKeyToken, token.SignedString)

	target := h.cfg.RootPath + h.cfg.DashboardPath
	if location, ok := session.Pop(models.SessionKeyLocation); ok {
		if local, err := localRedirectTarget(h.cfg.RootPath, location); err == nil {
			target = local
		} else {
			log.Warn().Str("location", location).Msg("ignoring unsafe location hint")
		}
	}

	log.Info().Int64("user_id", user.UserID).Msg("user signed in")
	http.Redirect(w, r, target, http.StatusFound)
}

// logout destroys the session and expires its cookie.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if session, ok := utils.GetSessionFromContext(ctx); ok {
		if err := h.services.SessionService.Destroy(ctx, session.ID); err != nil {
			logger.FromRequest(r).Err(err).Str("session", session.ID).Msg("error destroying session")
		}
		session.MarkClean()
	}

	http.SetCookie(w, h.expiredSessionCookie())
	http.Redirect(w, r, h.cfg.RootPath+h.authCfg.LoginPath, http.StatusFound)
}
