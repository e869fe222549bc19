package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-crm-front/internal/config"
	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the set of background workers of the server.
func NewWorkers(services *service.Services, cfg config.Session, log *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionJanitor(services.SessionService, cfg.PurgeInterval, log),
		},
	}
}

// Run starts every worker in its own goroutine and waits until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}
