// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/MKhiriev/go-crm-front/internal/config"
	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/registry"
	"github.com/MKhiriev/go-crm-front/internal/utils"
	"github.com/MKhiriev/go-crm-front/models"
)

// RuntimeChecker reports whether the running Go version satisfies the
// manifest requirement. An error means the requirement is unknown.
type RuntimeChecker interface {
	Check(ctx context.Context) (models.RuntimeStatus, error)
}

// SiteLoader gives access to the site configuration written by setup.
type SiteLoader interface {
	Installed(ctx context.Context) (bool, error)
	Load(ctx context.Context) (models.SiteConfig, error)
}

// Branch is the dispatch decision taken for a request.
type Branch int

const (
	// BranchController redirects requests naming the controller itself to
	// the dashboard.
	BranchController Branch = iota
	// BranchShortName dispatches to the entry registered under the literal
	// request name.
	BranchShortName
	// BranchFileName dispatches to the entry registered under the
	// CamelCase name.
	BranchFileName
	// BranchAsset answers 404 to an unresolved static asset request.
	BranchAsset
	// BranchFallback redirects to the controller.
	BranchFallback
)

func (b Branch) String() string {
	switch b {
	case BranchController:
		return "controller"
	case BranchShortName:
		return "short_name"
	case BranchFileName:
		return "file_name"
	case BranchAsset:
		return "asset"
	case BranchFallback:
		return "fallback"
	default:
		return fmt.Sprintf("Branch(%d)", int(b))
	}
}

// ResolvedTarget is the outcome of name resolution for one request.
// Entry is set only for BranchShortName and BranchFileName.
type ResolvedTarget struct {
	ShortName string
	FileName  string
	Entry     registry.Entry
	Branch    Branch
}

// FrontController handles every request that no fixed route claims.
type FrontController struct {
	runtime     RuntimeChecker
	site        SiteLoader
	authManager AuthenticationManager
	registry    *registry.Registry
	reporter    ErrorReporter
	assets      AssetMatcher

	rootPath       string
	controllerName string
	scriptSuffix   string
	dashboardPath  string
	setupPath      string
	runtimeErrPath string
}

// NewFrontController builds a front controller for the given app settings.
// All redirect targets are made absolute under cfg.RootPath.
func NewFrontController(
	runtime RuntimeChecker,
	site SiteLoader,
	authManager AuthenticationManager,
	reg *registry.Registry,
	reporter ErrorReporter,
	cfg config.App,
) *FrontController {
	return &FrontController{
		runtime:        runtime,
		site:           site,
		authManager:    authManager,
		registry:       reg,
		reporter:       reporter,
		assets:         NewAssetMatcher(cfg.AssetMatch),
		rootPath:       cfg.RootPath,
		controllerName: cfg.ControllerName,
		scriptSuffix:   cfg.ScriptSuffix,
		dashboardPath:  cfg.RootPath + cfg.DashboardPath,
		setupPath:      cfg.RootPath + cfg.SetupPath,
		runtimeErrPath: cfg.RootPath + cfg.RuntimeErrorPath,
	}
}

func (fc *FrontController) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r, shortName, fileName, ok := fc.bootstrap(w, r)
	if !ok {
		return
	}

	target := fc.Resolve(r, shortName, fileName)
	logger.FromRequest(r).Debug().
		Str("short_name", target.ShortName).
		Str("file_name", target.FileName).
		Stringer("branch", target.Branch).
		Msg("request resolved")

	fc.dispatch(w, r, target)
}

// bootstrap runs every step before dispatch. Panics and errors raised here
// are rendered by the error reporter; the guard ends when bootstrap returns.
func (fc *FrontController) bootstrap(w http.ResponseWriter, r *http.Request) (_ *http.Request, shortName, fileName string, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			fc.reporter.ReportPanic(w, r, rec, debug.Stack())
			ok = false
		}
	}()

	ctx := r.Context()

	status, err := fc.runtime.Check(ctx)
	if err != nil {
		writeCriticalError(w, r, err)
		return r, "", "", false
	}
	if !status.Satisfied {
		logger.FromRequest(r).Warn().
			Str("required", status.Required).
			Str("running", status.Running).
			Msg("runtime below required minimum")
		http.Redirect(w, r, fc.runtimeErrPath, http.StatusFound)
		return r, "", "", false
	}

	installed, err := fc.site.Installed(ctx)
	if err != nil {
		fc.reporter.ReportError(w, r, err)
		return r, "", "", false
	}
	if !installed {
		http.Redirect(w, r, fc.setupPath, http.StatusFound)
		return r, "", "", false
	}

	site, err := fc.site.Load(ctx)
	if err != nil {
		fc.reporter.ReportError(w, r, err)
		return r, "", "", false
	}
	r = r.WithContext(utils.WithSiteConfig(ctx, site))

	shortName, fileName = fc.Names(r.URL.Path)

	if location := r.URL.Query().Get(models.SessionKeyLocation); location != "" {
		session, ok := utils.GetSessionFromContext(r.Context())
		if !ok {
			fc.reporter.ReportError(w, r, ErrNoSession)
			return r, "", "", false
		}
		session.Set(models.SessionKeyLocation, location)
	}

	r, ok = fc.authManager.EnsureAuthentication(w, r)
	if !ok {
		return r, "", "", false
	}

	return r, shortName, fileName, true
}

// Names derives the literal and the CamelCase request name from a path.
// The path is coerced to valid UTF-8 and NFC-normalized first.
//
//	Names("/crm/list-events") // "list-events", "ListEvents.php" with root "/crm"
func (fc *FrontController) Names(urlPath string) (shortName, fileName string) {
	p := norm.NFC.String(strings.ToValidUTF8(urlPath, "\uFFFD"))
	shortName = strings.TrimPrefix(p, fc.rootPath+"/")
	fileName = utils.DashesToCamelCase(shortName, true) + fc.scriptSuffix
	return shortName, fileName
}

// Resolve picks the dispatch branch for the request names. The first
// matching rule wins.
func (fc *FrontController) Resolve(r *http.Request, shortName, fileName string) ResolvedTarget {
	target := ResolvedTarget{ShortName: shortName, FileName: fileName}

	if strings.EqualFold(shortName, fc.controllerName) || strings.EqualFold(fileName, fc.controllerName) {
		target.Branch = BranchController
		return target
	}
	if entry, ok := fc.registry.Lookup(shortName); ok {
		target.Entry, target.Branch = entry, BranchShortName
		return target
	}
	if entry, ok := fc.registry.Lookup(fileName); ok {
		target.Entry, target.Branch = entry, BranchFileName
		return target
	}
	if fc.assets.IsAsset(r) {
		target.Branch = BranchAsset
		return target
	}

	target.Branch = BranchFallback
	return target
}

func (fc *FrontController) dispatch(w http.ResponseWriter, r *http.Request, target ResolvedTarget) {
	switch target.Branch {
	case BranchController:
		http.Redirect(w, r, fc.dashboardPath, http.StatusFound)
	case BranchShortName, BranchFileName:
		target.Entry.Handler.ServeHTTP(w, r)
	case BranchAsset:
		w.WriteHeader(http.StatusNotFound)
	default:
		http.Redirect(w, r, fc.rootPath+"/"+fc.controllerName, http.StatusFound)
	}
}
