package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/notes-backend/internal/adapter/notestore"
	"github.com/heartmarshall/notes-backend/internal/auth"
	"github.com/heartmarshall/notes-backend/internal/config"
	"github.com/heartmarshall/notes-backend/internal/service/note"
	"github.com/heartmarshall/notes-backend/internal/transport/middleware"
	"github.com/heartmarshall/notes-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects the
// storage backend, and serves HTTP until ctx is cancelled, then shuts the
// server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
	)

	backend, closeBackend, err := OpenBackend(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer closeBackend()

	handler, stop := NewHandler(cfg, logger, notestore.New(backend))
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// NewHandler assembles the service, handlers and middleware over store.
// stop releases background resources of the middleware.
func NewHandler(cfg *config.Config, logger *slog.Logger, store *notestore.Store) (http.Handler, func()) {
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	svc := note.NewService(logger, store, cfg.Notes)

	var (
		rateLimit middleware.Middleware
		stop      = func() {}
	)
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit)
		rateLimit, stop = limiter.Limit(), limiter.Stop
	}

	handler := rest.NewRouter(
		rest.NewNoteHandler(svc, logger, cfg.Server.MaxBodyBytes),
		rest.NewHealthHandler(store, cfg.Storage.Driver, BuildVersion()),
		middleware.Auth(tokens, logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimit,
	)

	return handler, stop
}
