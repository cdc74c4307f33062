// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/middleware"
)

// NewRouter assembles the HTTP routes around the handler.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)

		r.Post("/chat", h.Chat)
		r.Get("/products", h.Products)
		r.Get("/categories", h.Categories)
		r.Get("/analytics", h.Analytics)
		r.Get("/analytics/sessions/{sessionID}", h.SessionAnalytics)
		r.Get("/health", h.Health)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
