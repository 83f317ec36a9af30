package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/labzang/soccer/go/internal/corsutil"
	"github.com/labzang/soccer/go/internal/httpapi"
)

func setupServer(config *Config, services *Services) *http.Server {
	// Setup HTTP/2 server
	return &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Server.Port),
		Handler: h2c.NewHandler(newRouter(config, services), &http2.Server{}),
	}
}

func newRouter(config *Config, services *Services) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(httpapi.RequestLogger)

	registerServices(r, services)

	// Add health check endpoint
	setupHealthCheck(r)

	// Wrap with CORS
	return corsutil.Handler(config.CORS, r)
}

func registerServices(r chi.Router, services *Services) {
	r.Mount("/players", services.Players.Routes())
	r.Mount("/team", services.Teams.Routes())
	r.Mount("/stadiums", services.Stadiums.Routes())
	r.Mount("/schedules", services.Schedules.Routes())
	r.Mount("/search", services.Search.Routes())
}

func setupHealthCheck(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
