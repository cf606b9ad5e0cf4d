// Command api runs the e-commerce portal HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecomportal/backend/internal/config"
	"github.com/ecomportal/backend/internal/handler"
	"github.com/ecomportal/backend/internal/logger"
	"github.com/ecomportal/backend/internal/middleware"
	"github.com/ecomportal/backend/internal/repository"
	"github.com/ecomportal/backend/internal/router"
	"github.com/ecomportal/backend/internal/server"
	"github.com/ecomportal/backend/internal/service"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// shutdownTimeout bounds how long inflight requests may run during shutdown.
const shutdownTimeout = 10 * time.Second

func main() {
	bootLog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Primary.Env, cfg.Logging.Level)

	s, err := server.New(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(s)
	services := service.NewServices(s, repos)
	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	r := router.New(s, middlewares, handlers)
	s.SetupHTTPServer(r)

	// Run the listener in the background so the main goroutine can wait for
	// shutdown signals.
	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server failed")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
