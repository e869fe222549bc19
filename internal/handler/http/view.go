package http

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/utils"
	"github.com/MKhiriev/go-crm-front/models"
)

// viewPaths are the root-absolute links used by the built-in pages.
type viewPaths struct {
	Login     string
	Logout    string
	Setup     string
	Dashboard string
}

type viewData struct {
	Title    string
	Site     models.SiteConfig
	Username string
	Error    string
	Form     url.Values
	Runtime  models.RuntimeStatus
	Paths    viewPaths
}

func (h *Handler) paths() viewPaths {
	return viewPaths{
		Login:     h.cfg.RootPath + h.authCfg.LoginPath,
		Logout:    h.cfg.RootPath + logoutPath,
		Setup:     h.cfg.RootPath + h.cfg.SetupPath,
		Dashboard: h.cfg.RootPath + h.cfg.DashboardPath,
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, status int, data viewData) {
	data.Paths = h.paths()
	if data.Form == nil {
		data.Form = url.Values{}
	}
	if data.Username == "" {
		data.Username, _ = utils.GetUsernameFromContext(r.Context())
	}

	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("view", name).Msg("error rendering view")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteHTML(w, status, &buf)
}
