package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/service"
	"github.com/MKhiriev/go-crm-front/internal/utils"
	"github.com/MKhiriev/go-crm-front/models"
)

// AuthenticationManager gates access to protected pages.
//
// EnsureAuthentication returns the request enriched with the authenticated
// user and true, or writes a response (usually a redirect to the login
// page) and returns false.
type AuthenticationManager interface {
	EnsureAuthentication(w http.ResponseWriter, r *http.Request) (*http.Request, bool)
}

// sessionAuthenticator keeps the signed token in the visitor session.
type sessionAuthenticator struct {
	authService service.AuthService
	loginPath   string
}

func newSessionAuthenticator(authService service.AuthService, loginPath string) *sessionAuthenticator {
	return &sessionAuthenticator{authService: authService, loginPath: loginPath}
}

func (a *sessionAuthenticator) EnsureAuthentication(w http.ResponseWriter, r *http.Request) (*http.Request, bool) {
	if authenticated, ok := a.authenticate(r); ok {
		return authenticated, true
	}

	if session, ok := utils.GetSessionFromContext(r.Context()); ok {
		if _, has := session.Get(models.SessionKeyLocation); !has {
			session.Set(models.SessionKeyLocation, requestURI(r))
		}
	}

	http.Redirect(w, r, a.loginPath, http.StatusFound)
	return r, false
}

func (a *sessionAuthenticator) authenticate(r *http.Request) (*http.Request, bool) {
	ctx := r.Context()

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		return r, false
	}

	raw, ok := session.Get(models.SessionKeyToken)
	if !ok {
		return r, false
	}

	token, err := a.authService.ParseToken(ctx, raw)
	if err != nil {
		logger.FromRequest(r).Info().Err(err).Msg("dropping session token")
		session.Delete(models.SessionKeyToken)
		return r, false
	}

	return r.WithContext(utils.WithUser(ctx, token.UserID, token.Username)), true
}

// localRedirectTarget turns a location hint into a path on this site.
// Hints without a leading slash are taken relative to rootPath.
func localRedirectTarget(rootPath, location string) (string, error) {
	if strings.HasPrefix(location, "//") || strings.HasPrefix(location, `/\`) {
		return "", ErrUnsafeRedirect
	}

	u, err := url.Parse(location)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Opaque != "" {
		return "", ErrUnsafeRedirect
	}

	if strings.HasPrefix(location, "/") {
		return location, nil
	}
	return rootPath + "/" + location, nil
}
