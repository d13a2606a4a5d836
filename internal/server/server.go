package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-meet/internal/config"
	"github.com/MKhiriev/go-meet/internal/handler"
	"github.com/MKhiriev/go-meet/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may finish.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	// listening receives the bound address once the listener is open.
	listening chan<- net.Addr
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.httpServer.server.Addr, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(listener)
	}()

	s.logger.Info().Str("address", listener.Addr().String()).Msg("Launching HTTP server")
	if s.listening != nil {
		s.listening <- listener.Addr()
	}

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = s.httpServer.shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down HTTP server: %w", err)
	}
	if err = <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
