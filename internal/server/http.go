package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-meet/internal/config"
	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

const readHeaderTimeout = 5 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

// newHTTPServer builds the server for handler. A positive request timeout
// bounds reads, writes and the request context.
func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	server := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	if cfg.RequestTimeout > 0 {
		server.Handler = middleware.Timeout(cfg.RequestTimeout)(handler)
		server.ReadTimeout = cfg.RequestTimeout
		// leave room to write the timeout response itself
		server.WriteTimeout = cfg.RequestTimeout + time.Second
	}

	return &httpServer{server: server, logger: logger}
}

// serve blocks until the server is shut down.
func (h *httpServer) serve(listener net.Listener) error {
	if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}
