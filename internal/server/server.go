package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-crm-front/internal/config"
	"github.com/MKhiriev/go-crm-front/internal/handler"
	"github.com/MKhiriev/go-crm-front/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	background BackgroundRunner
	logger     *logger.Logger

	shutdownOnce sync.Once
}

// NewServer creates a server for every handler present in handlers and
// binds their listen addresses. background may be nil.
func NewServer(handlers *handler.Handlers, background BackgroundRunner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	return newServer(handlers, background, cfg, logger)
}

func newServer(handlers *handler.Handlers, background BackgroundRunner, cfg config.Server, logger *logger.Logger) (*server, error) {
	servers := &server{background: background, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			if servers.httpServer != nil {
				_ = servers.httpServer.listener.Close()
			}
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		// finish HTTP server
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}

		// finish gRPC server
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}

// run serves until ctx is cancelled or a transport fails, then shuts every
// transport down and waits for the background jobs to return.
func (s *server) run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	errCh := make(chan error, 2)

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- s.httpServer.RunServer()
		}()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- s.gRPCServer.RunServer(ctx)
		}()
	}
	if s.background != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.background.Run(ctx)
		}()
	}

	// wait for a stop signal or the first transport to exit
	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	s.Shutdown()
	cancel()
	wg.Wait()
	close(errCh)

	for err := range errCh {
		runErr = errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}
