package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/healthz", h.healthz)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	app := chi.NewRouter()
	app.Get("/api/version/", h.getServerVersion)

	app.Group(func(r chi.Router) {
		r.Use(h.withSession)

		// routes without authorization
		r.Get(h.cfg.SetupPath, h.setupForm)
		r.Post(h.cfg.SetupPath, h.setup)
		r.Get(h.cfg.RuntimeErrorPath, h.runtimeError)
		r.Get(h.authCfg.LoginPath, h.loginForm)
		r.Post(h.authCfg.LoginPath, h.login)
		r.Get(logoutPath, h.logout)
		r.Post(logoutPath, h.logout)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get(h.cfg.DashboardPath, h.dashboard)
		})

		// everything else goes through the front controller, whatever the method
		r.Handle("/", h.front)
		r.Handle("/*", h.front)
	})

	app.MethodNotAllowed(CheckHTTPMethod(app))

	if h.cfg.RootPath == "" {
		router.Mount("/", app)
	} else {
		router.Mount(h.cfg.RootPath, app)
	}

	return router
}
