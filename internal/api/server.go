package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/api/handlers"
	"github.com/babylonchain/bridge-pool-service/internal/api/middlewares"
	"github.com/babylonchain/bridge-pool-service/internal/config"
	"github.com/babylonchain/bridge-pool-service/internal/services"
)

type Server struct {
	httpServer *http.Server
	handlers   *handlers.Handler
}

func New(
	ctx context.Context, cfg *config.Config, services *services.Services,
) (*Server, error) {
	r := chi.NewRouter()

	if cfg.Server.LogLevel != "" {
		logLevel, err := zerolog.ParseLevel(cfg.Server.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("error while parsing log level: %w", err)
		}
		zerolog.SetGlobalLevel(logLevel)
	}

	r.Use(middlewares.CorsMiddleware(cfg))
	r.Use(middlewares.SecurityHeadersMiddleware())
	r.Use(middlewares.TracingMiddleware)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.ContentLengthMiddleware(cfg))

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		WriteTimeout: cfg.Server.WriteTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      r,
	}

	server := &Server{
		httpServer: srv,
		handlers:   handlers.New(services),
	}
	server.SetupRoutes(r)
	return server, nil
}

// Handler exposes the router, mainly for tests.
func (a *Server) Handler() http.Handler {
	return a.httpServer.Handler
}

func (a *Server) Start() error {
	log.Info().Msgf("Starting server on %s", a.httpServer.Addr)
	return a.httpServer.ListenAndServe()
}

func (a *Server) Shutdown(ctx context.Context) error {
	return a.httpServer.Shutdown(ctx)
}
