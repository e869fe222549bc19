package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/service"
	"github.com/MKhiriev/go-crm-front/models"
)

// setupForm renders the installer while the site is not installed.
// An installed site sends the visitor back to the application root.
func (h *Handler) setupForm(w http.ResponseWriter, r *http.Request) {
	installed, err := h.services.SiteService.Installed(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error checking site configuration")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if installed {
		http.Redirect(w, r, h.cfg.RootPath+"/", http.StatusFound)
		return
	}

	h.render(w, r, "setup.html", http.StatusOK, viewData{Title: "Setup"})
}

// setup writes the site configuration and creates the administrator.
func (h *Handler) setup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form := r.PostForm

	site := models.SiteConfig{
		SiteName: form.Get("site_name"),
		URL:      form.Get("url"),
		Locale:   form.Get("locale"),
		Timezone: form.Get("timezone"),
	}
	admin := models.User{
		Username: form.Get("admin_username"),
		Password: form.Get("admin_password"),
	}

	saved, err := h.services.SiteService.Install(ctx, site, admin)
	if errors.Is(err, service.ErrAlreadyInstalled) {
		http.Redirect(w, r, h.cfg.RootPath+"/", http.StatusFound)
		return
	}
	if err != nil {
		if statusFromError(err) >= http.StatusInternalServerError {
			log.Err(err).Msg("installation failed")
		}
		form.Del("admin_password")
		h.render(w, r, "setup.html", statusFromError(err), viewData{
			Title: "Setup",
			Error: userMessage(err),
			Form:  form,
		})
		return
	}

	log.Info().Str("site", saved.SiteName).Str("admin", admin.Username).Msg("site installed")
	http.Redirect(w, r, h.cfg.RootPath+h.authCfg.LoginPath, http.StatusFound)
}
