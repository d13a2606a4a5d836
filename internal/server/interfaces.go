package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT.
	RunServer()

	// Run serves requests until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error
}
