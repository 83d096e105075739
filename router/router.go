// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/party-feedback/cliparse"
	"github.com/danielhkuo/party-feedback/feedback"
	"github.com/danielhkuo/party-feedback/handlers"
	"github.com/danielhkuo/party-feedback/middleware"
)

func NewRouter(store feedback.Store, cfg cliparse.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	// Initialize handlers
	feedbackHandler := handlers.NewFeedbackHandler(feedback.NewService(store))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Survey form
		r.Post("/check", middleware.WithLogging(feedbackHandler.Check))
		r.Post("/submit", middleware.WithLogging(feedbackHandler.Submit))

		// Admin (unauthenticated)
		r.Get("/report", middleware.WithLogging(feedbackHandler.Report))
		r.Get("/report/export", middleware.WithLogging(feedbackHandler.Export))
		r.Post("/reset", middleware.WithLogging(feedbackHandler.Reset))
	})

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("party-feedback API v1"))
	})

	return r
}
