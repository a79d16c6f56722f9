package server

import "context"

// Server defines the lifecycle contract of the dashboard server.
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received and the server has shut down.
	RunServer()

	// Run is like RunServer but stops when ctx is cancelled. It returns the
	// listener error if the server could not start.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
