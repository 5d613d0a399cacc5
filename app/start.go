package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Start serves the HTTP surface until ctx is done or a shutdown signal arrives.
func (app *App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              app.Cfg.Server.Address,
		Handler:           app.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		app.Logger.InfoContext(ctx, "Starting server", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("ListenAndServe: %w", err)
		}
		close(serveErr)
	}()

	return app.WaitForShutdown(ctx, srv, serveErr)
}
