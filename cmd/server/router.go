package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/loveplan/backend/internal/config"
	"github.com/loveplan/backend/internal/handler"
	appMiddleware "github.com/loveplan/backend/internal/middleware"
)

func newRouter(cfg *config.Config, plans handler.PlanSubmitter, apiLimiter *appMiddleware.RateLimiter) http.Handler {
	planHandler := handler.NewPlanHandler(plans)
	healthHandler := handler.NewHealthHandler()
	staticHandler := handler.NewStaticHandler(cfg.StaticDir)

	r := chi.NewRouter()

	// Global middleware
	r.Use(appMiddleware.Recovery)
	r.Use(appMiddleware.RequestID)
	r.Use(appMiddleware.Logger)
	r.Use(appMiddleware.SecureHeaders)
	r.Use(cors.Handler(corsOptions(cfg.CORSOrigins)))

	r.Get("/health", healthHandler.Check)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLimiter.Middleware())
		r.Use(chimw.RequestSize(cfg.BodyLimitBytes))
		r.MethodNotAllowed(handler.MethodNotAllowed)

		r.Post("/plan", planHandler.Submit)
	})

	// Everything else is the front-end.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		staticHandler.ServeHTTP(w, r)
	})

	return r
}

// corsOptions reflects any origin unless an allow-list is configured.
func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if len(origins) == 0 {
		opts.AllowOriginFunc = func(r *http.Request, origin string) bool { return true }
	} else {
		opts.AllowedOrigins = origins
	}
	return opts
}
