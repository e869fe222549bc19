package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/service"
)

// runtimeError explains which Go version the installation requires.
func (h *Handler) runtimeError(w http.ResponseWriter, r *http.Request) {
	data := viewData{Title: "Unsupported runtime"}

	status, err := h.services.RuntimeService.Check(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("runtime requirement cannot be determined")
		data.Error = CriticalErrorMessage(err)
		h.render(w, r, "runtime_error.html", http.StatusInternalServerError, data)
		return
	}
	data.Runtime = status

	h.render(w, r, "runtime_error.html", http.StatusOK, data)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	site, err := h.services.SiteService.Load(r.Context())
	if errors.Is(err, service.ErrNotInstalled) {
		http.Redirect(w, r, h.cfg.RootPath+h.cfg.SetupPath, http.StatusFound)
		return
	}
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error loading site configuration")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "dashboard.html", http.StatusOK, viewData{Title: "Dashboard", Site: site})
}
