// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/chat"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/metrics"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/models"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/prefs"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/recommend"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/scoring"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/store"
)

// maxBodyBytes bounds request bodies; chat messages are short.
const maxBodyBytes = 64 << 10

// Handler serves the API endpoints.
type Handler struct {
	store        store.ProductStore
	scorer       *scoring.Engine
	recommender  *recommend.Engine
	responder    *chat.Responder
	logger       zerolog.Logger
	defaultLimit int
}

// NewHandler wires the core engines into the HTTP surface.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(st store.ProductStore, scorer *scoring.Engine, recommender *recommend.Engine,
	defaultLimit int, logger zerolog.Logger) *Handler {
	if defaultLimit <= 0 {
		defaultLimit = recommend.DefaultLimit
	}
	return &Handler{
		store:        st,
		scorer:       scorer,
		recommender:  recommender,
		responder:    chat.NewResponder(),
		logger:       logger.With().Str("component", "api").Logger(),
		defaultLimit: defaultLimit,
	}
}

// ChatResponse is the payload of POST /api/chat.
type ChatResponse struct {
	SessionID       string                     `json:"session_id"`
	Response        string                     `json:"response"`
	InterestScore   float64                    `json:"interest_score"`
	EngagementLevel string                     `json:"engagement_level"`
	InterestTier    recommend.Tier             `json:"interest_tier"`
	Preferences     models.Preferences         `json:"extracted_preferences"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// Chat runs the per-turn pipeline: score the message, extract
// preferences, recommend, compose the reply, and record the turn.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON", err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	limit := req.Limit
	if limit <= 0 {
		limit = h.defaultLimit
	}

	score, outcome := h.scorer.ScoreDetail(sessionID, req.Message)
	metrics.RecordScoring(outcome.String(), score)

	extracted := prefs.Extract(req.Message)

	rec := h.recommender.Recommend(r.Context(), recommend.Request{
		SessionID:     sessionID,
		Preferences:   extracted,
		InterestScore: score,
		Limit:         limit,
	})
	failed := make([]string, 0, len(rec.GeneratorErrors))
	for name := range rec.GeneratorErrors {
		failed = append(failed, name)
	}
	metrics.RecordRecommendation(rec.Outcome.String(), string(rec.Tier), failed)

	products := make([]models.Product, 0, len(rec.Recommendations))
	productIDs := make([]string, 0, len(rec.Recommendations))
	for _, item := range rec.Recommendations {
		products = append(products, item.Product)
		productIDs = append(productIDs, item.ID)
	}

	reply := h.responder.Reply(req.Message, products)

	// Conversation logging is best effort; a persistence hiccup must not
	// break the chat.
	turn := &models.ConversationTurn{
		SessionID:           sessionID,
		UserMessage:         req.Message,
		BotResponse:         reply,
		InterestScore:       score,
		RecommendedProducts: productIDs,
		Preferences:         extracted,
		Timestamp:           time.Now(),
	}
	if err := h.store.RecordConversation(r.Context(), turn); err != nil {
		h.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to record conversation")
	}

	analysis := h.scorer.Analyze(sessionID)

	respondJSON(w, http.StatusOK, ChatResponse{
		SessionID:       sessionID,
		Response:        reply,
		InterestScore:   score,
		EngagementLevel: analysis.EngagementLevel,
		InterestTier:    rec.Tier,
		Preferences:     extracted,
		Recommendations: rec.Recommendations,
	})
}

// Products serves GET /api/products with optional category, search,
// max_price, and limit filters.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	req := ProductsRequest{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		MaxPrice: getFloatParam(r, "max_price", 0),
		Limit:    getIntParam(r, "limit", 20),
	}
	if err := validateRequest(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	q := store.Query{
		Search:   req.Search,
		MaxPrice: req.MaxPrice,
		Limit:    req.Limit,
	}
	if req.Category != "" {
		q.Categories = []string{req.Category}
	}

	start := time.Now()
	products, err := h.store.QueryProducts(r.Context(), q)
	metrics.RecordStoreQuery("query_products", time.Since(start), err)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "failed to query products", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"count":    len(products),
	})
}

// Categories serves GET /api/categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	categories, err := h.store.Categories(r.Context())
	metrics.RecordStoreQuery("categories", time.Since(start), err)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "failed to load categories", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// Analytics serves GET /api/analytics: cross-session recommendation
// activity.
func (h *Handler) Analytics(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.recommender.AnalyticsReport())
}

// SessionAnalytics serves GET /api/analytics/sessions/{sessionID}: the
// per-session interest snapshot.
func (h *Handler) SessionAnalytics(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "session id required", nil)
		return
	}
	respondJSON(w, http.StatusOK, h.scorer.Analyze(sessionID))
}

// Health serves GET /api/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "product store unreachable", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"state": "healthy"})
}

// getIntParam extracts an integer query parameter with a default.
func getIntParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// getFloatParam extracts a float query parameter with a default.
func getFloatParam(r *http.Request, name string, def float64) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}
