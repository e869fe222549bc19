package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-crm-front/internal/app"
	"github.com/MKhiriev/go-crm-front/internal/service"
	"github.com/MKhiriev/go-crm-front/internal/siteconfig"
	"github.com/MKhiriev/go-crm-front/internal/store"
	"github.com/MKhiriev/go-crm-front/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWeakPassword:            http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAlreadyInstalled:        http.StatusConflict,
	service.ErrNotInstalled:            http.StatusServiceUnavailable,
	service.ErrRequirementUnknown:      http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages is checked in order, so the more specific causes wrapped
// inside service errors come first.
var errorMessages = []struct {
	target  error
	message string
}{
	{validators.ErrPasswordTooLong, app.MsgPasswordTooLong},
	{validators.ErrInvalidUsername, app.MsgInvalidUsername},
	{validators.ErrUsernameTooLong, app.MsgInvalidUsername},
	{siteconfig.ErrInvalidSiteConfig, app.MsgInvalidSiteConfig},
	{service.ErrWeakPassword, app.MsgWeakPassword},
	{service.ErrWrongPassword, app.MsgInvalidLoginPassword},
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
	{service.ErrAlreadyInstalled, app.MsgAlreadyInstalled},
	{store.ErrUsernameAlreadyExists, app.MsgLoginAlreadyExists},
}

// userMessage returns the text shown on a form for err. Internal failures
// are reported with a generic message only.
func userMessage(err error) string {
	if statusFromError(err) >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgInvalidDataProvided
}
