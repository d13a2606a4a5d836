package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-meet/internal/config"
	"github.com/MKhiriev/go-meet/internal/handler"
	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/server"
	"github.com/MKhiriev/go-meet/internal/service"
	"github.com/MKhiriev/go-meet/internal/store"
	"github.com/MKhiriev/go-meet/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-meet-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	if buildInfo.Known() {
		cfg.App.Version = buildInfo.Version()
	}

	log.Debug().Str("environment", cfg.App.Environment).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages, err := store.NewStorages(ctx, db, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
