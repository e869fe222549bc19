package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the process is
	// asked to stop.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// BackgroundRunner is a set of jobs run next to the transports for the
// lifetime of the server. Run blocks until ctx is cancelled.
type BackgroundRunner interface {
	Run(ctx context.Context)
}
