package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	apperrors "github.com/navaneethred/opticfibresimulation/internal/errors"
	"github.com/navaneethred/opticfibresimulation/internal/logging"
	"github.com/navaneethred/opticfibresimulation/internal/server"
)

// runServe starts the HTTP API and blocks until a termination signal. The
// configured timeout does not apply; a server runs until stopped.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.NewLogger(a.ErrWriter, "server")
	srv := server.New(a.Config.Addr, logger)

	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
