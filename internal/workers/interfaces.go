// Package workers provides the background jobs started next to the HTTP
// server. Each job runs until the server context is cancelled.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
