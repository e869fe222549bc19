package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-crm-front/internal/config"
	"github.com/MKhiriev/go-crm-front/internal/handler"
	myHTTP "github.com/MKhiriev/go-crm-front/internal/handler/http"
	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/registry"
	"github.com/MKhiriev/go-crm-front/internal/server"
	"github.com/MKhiriev/go-crm-front/internal/service"
	"github.com/MKhiriev/go-crm-front/internal/store"
	"github.com/MKhiriev/go-crm-front/internal/workers"
	"github.com/MKhiriev/go-crm-front/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("go-crm-front")
	cfg, err := config.GetStructuredConfig()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	// the runtime requirement must be known before anything is served
	status, err := service.NewRuntimeService(cfg.App.ManifestPath, log).Check(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, myHTTP.CriticalErrorMessage(err))
		os.Exit(1)
	}
	if !status.Satisfied {
		log.Warn().
			Str("required", status.Required).
			Str("running", status.Running).
			Msg("runtime below required minimum, every page will show the runtime error")
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Str("dialect", db.Dialect()).Msg("error applying migrations")
	}

	services, err := service.NewServices(store.NewStorages(db, log), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	reg := registry.New()
	pages, err := registry.LoadPages(reg, cfg.App.PagesDir, cfg.App.ScriptSuffix, cfg.App.RootPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading pages")
	}
	files, err := registry.LoadStatic(reg, cfg.App.StaticDir)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading static files")
	}
	log.Info().Int("pages", pages).Int("static", files).Msg("registry populated")

	handlers, err := handler.NewHandlers(services, reg, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Session, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
