package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"readiness-api/internal/shared/config"
	"readiness-api/internal/shared/telemetry"
)

// Run listens on cfg.Port and serves h until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, h http.Handler) error {
	ln, err := net.Listen("tcp", Addr(cfg.Port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return Serve(ctx, cfg, ln, h)
}

// Serve serves h on ln until ctx is cancelled, then drains in-flight requests
// for up to cfg.Server.ShutdownTimeout.
func Serve(ctx context.Context, cfg config.Config, ln net.Listener, h http.Handler) error {
	srv := &http.Server{
		Handler:           h,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		telemetry.Info("server.start", map[string]any{"addr": ln.Addr().String(), "env": cfg.Env})
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	telemetry.Info("server.shutdown", map[string]any{"timeout": cfg.Server.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	telemetry.Info("server.stopped", nil)
	return nil
}
