package handler

import (
	"github.com/MKhiriev/go-meet/internal/config"
	"github.com/MKhiriev/go-meet/internal/handler/http"
	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, uploadsDir(cfg.Storage.Photos), logger),
	}, nil
}

// uploadsDir is the directory to serve under /uploads, or "" when photos
// are not kept on local disk.
func uploadsDir(photos config.Photos) string {
	switch photos.Driver {
	case "", config.PhotoDriverLocal:
		return photos.Dir
	default:
		return ""
	}
}
