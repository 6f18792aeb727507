package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ollamaapi/internal/httpapi"
)

// serve prepares the daemon, then runs the HTTP server until ctx is done.
func serve(ctx context.Context, a app) error {
	cfg := a.Config
	log := a.Log

	// Registered before startup so a signal during the grace period still
	// stops a daemon this process launched.
	if cfg.Daemon.StopOnExit {
		defer func() {
			if err := a.Supervisor.Stop(context.Background()); err != nil {
				log.Warn().Err(err).Msg("stopping Ollama failed")
			}
		}()
	}

	prepareDaemon(ctx, a)
	if ctx.Err() != nil {
		return nil
	}

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	handler := httpapi.NewMux(a.Manager, httpapi.Options{
		Logger:       log,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		BaseContext:  baseCtx,
		CORS: httpapi.CORSOptions{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: cfg.CORS.AllowedMethods,
			AllowedHeaders: cfg.CORS.AllowedHeaders,
		},
	})
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout.Std(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("model", cfg.Model.Default).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down")
	case err, ok := <-errCh:
		if ok {
			serveErr = fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown error")
	}
	// Daemon calls still running past the shutdown timeout are canceled here.
	cancelBase()
	return serveErr
}

// prepareDaemon runs the gated startup sequence. Failures are logged and the
// server still starts; requests then report the daemon error.
func prepareDaemon(ctx context.Context, a app) {
	cfg := a.Config
	log := a.Log

	var ready bool
	if cfg.Daemon.AutoStart {
		ready = a.Supervisor.EnsureReady(ctx)
	} else {
		ready = a.Supervisor.Running(ctx)
	}
	if !ready {
		log.Warn().Str("host", cfg.Daemon.Host).Msg("Ollama is not ready; API calls will fail until it is running")
		return
	}
	if cfg.Model.PullDefault {
		if !a.Manager.EnsureModel(ctx, cfg.Model.Default) {
			log.Warn().Str("model", cfg.Model.Default).Msg("default model is not available")
		}
	}
}
