package http

import (
	"net/http"

	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/utils"
)

// Health statuses, named after the gRPC health protocol.
const (
	healthServing    = "SERVING"
	healthNotServing = "NOT_SERVING"
)

type healthResponse struct {
	Status string `json:"status"`
}

// healthz reports SERVING while the runtime requirement is known and met.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	resp, code := healthResponse{Status: healthServing}, http.StatusOK

	status, err := h.services.RuntimeService.Check(r.Context())
	if err != nil || !status.Satisfied {
		resp, code = healthResponse{Status: healthNotServing}, http.StatusServiceUnavailable
	}

	if _, err = utils.WriteJSON(w, resp, code); err != nil {
		logger.FromRequest(r).Err(err).Send()
	}
}
