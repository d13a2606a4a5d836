package http

import (
	"github.com/MKhiriev/go-meet/internal/config"
	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/service"
)

type Handler struct {
	services *service.Services

	// requireToken makes the bearer token mandatory on identity routes.
	requireToken bool
	// devRoutes exposes /api/dev/*.
	devRoutes bool
	// uploadsDir is served under /uploads when set.
	uploadsDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, uploadsDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		requireToken: cfg.RequireToken,
		devRoutes:    cfg.IsDevelopment(),
		uploadsDir:   uploadsDir,
		logger:       logger,
	}
}
