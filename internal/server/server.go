// Package server exposes the loss calculator over a small HTTP API with
// Prometheus metrics, security headers, and optional tracing.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/navaneethred/opticfibresimulation/internal/logging"
)

// Server timeouts bound slow clients; the API itself is CPU-light.
const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 120 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Server is the HTTP API for the loss calculator.
type Server struct {
	addr     string
	logger   logging.Logger
	metrics  *Metrics
	security SecurityConfig
	httpSrv  *http.Server
}

// New creates a Server listening on addr with the default security
// configuration.
//
// Parameters:
//   - addr: The listen address, e.g. ":8080".
//   - logger: The structured logger for request and lifecycle events.
//
// Returns:
//   - *Server: The configured server, ready for Run.
func New(addr string, logger logging.Logger) *Server {
	return &Server{
		addr:     addr,
		logger:   logger,
		metrics:  NewMetrics(),
		security: DefaultSecurityConfig(),
	}
}

// routes builds the request multiplexer with the full middleware chain:
// security headers, metrics, and tracing around every handler.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return SecurityMiddleware(s.security, s.metricsMiddleware(tracingMiddleware(h)))
	}

	mux.HandleFunc("/api/v1/fibers", wrap(s.handleFibers))
	mux.HandleFunc("/api/v1/compute", wrap(s.handleCompute))
	mux.HandleFunc("/api/v1/sweep", wrap(s.handleSweep))
	mux.HandleFunc("/healthz", wrap(s.handleHealth))
	mux.HandleFunc("/metrics", s.handleMetrics)

	return mux
}

// Run serves the API until ctx is canceled, then drains connections within
// the shutdown timeout.
//
// Parameters:
//   - ctx: Cancellation stops the server.
//
// Returns:
//   - error: The listener error, or nil after a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:         s.addr,
		Handler:      s.routes(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", logging.String("addr", s.addr))
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http server shutdown failed", err)
			return err
		}
		return nil
	}
}
