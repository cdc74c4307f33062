// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/models"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/store"
)

// Engine fuses candidate generators into ranked recommendations.
// It is safe for concurrent use once registration is complete.
type Engine struct {
	store    store.ProductStore
	strategy TierStrategy
	weights  map[Tier]Weights

	generators []Generator
	genMu      sync.RWMutex

	profiles *profileStore
	logger   zerolog.Logger
	now      func() time.Time
}

// NewEngine creates a recommendation engine backed by st for the
// popularity fallback. A nil strategy uses the default thresholds.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(st store.ProductStore, strategy TierStrategy, logger zerolog.Logger) *Engine {
	if strategy == nil {
		strategy = DefaultThresholds()
	}
	return &Engine{
		store:    st,
		strategy: strategy,
		weights:  DefaultTierWeights(),
		profiles: newProfileStore(),
		logger:   logger.With().Str("component", "recommend").Logger(),
		now:      time.Now,
	}
}

// RegisterGenerator adds a generator to the ensemble. Registration order
// is the tie-break order during fusion.
func (e *Engine) RegisterGenerator(g Generator) {
	e.genMu.Lock()
	defer e.genMu.Unlock()

	e.generators = append(e.generators, g)
	e.logger.Info().
		Str("generator", g.Name()).
		Msg("registered generator")
}

// Profiles exposes the session interaction history to generators that
// learn from it.
func (e *Engine) Profiles() HistoryProvider {
	return e.profiles
}

// generatorResult collects one generator's output for fusion.
type generatorResult struct {
	name       string
	candidates []Candidate
	err        error
}

// Recommend produces ranked recommendations for the request. It never
// returns an error: when every generator fails the response falls back
// to a popularity ranking, empty if even that fails.
func (e *Engine) Recommend(ctx context.Context, req Request) Response {
	if req.Limit <= 0 {
		req.Limit = DefaultLimit
	}
	tier := e.strategy.Tier(req.InterestScore)

	e.genMu.RLock()
	generators := append([]Generator(nil), e.generators...)
	e.genMu.RUnlock()

	results := e.runGenerators(ctx, generators, req)

	failed := make(map[string]string)
	succeeded := 0
	for _, res := range results {
		if res.err != nil {
			failed[res.name] = res.err.Error()
			e.logger.Warn().
				Str("generator", res.name).
				Err(res.err).
				Msg("generator failed")
			continue
		}
		succeeded++
	}

	if succeeded == 0 {
		e.logger.Error().
			Str("session_id", req.SessionID).
			Int("generators", len(generators)).
			Msg("all generators failed, using popularity fallback")
		return Response{
			Recommendations: e.fallback(ctx, req.Limit),
			Tier:            tier,
			Outcome:         OutcomeFallback,
			GeneratorErrors: failed,
		}
	}

	recommendations := e.fuse(results, e.weights[tier], req.Limit)
	e.storeHistory(req, recommendations)

	outcome := OutcomeOK
	if len(failed) > 0 {
		outcome = OutcomeDegraded
	}

	e.logger.Debug().
		Str("session_id", req.SessionID).
		Str("tier", string(tier)).
		Int("returned", len(recommendations)).
		Int("failed_generators", len(failed)).
		Msg("recommendations generated")

	return Response{
		Recommendations: recommendations,
		Tier:            tier,
		Outcome:         outcome,
		GeneratorErrors: failed,
	}
}

// runGenerators fans the request out to every generator in parallel and
// collects results in registration order. A panicking generator is
// reported as a failed one.
func (e *Engine) runGenerators(ctx context.Context, generators []Generator, req Request) []generatorResult {
	results := make([]generatorResult, len(generators))

	var wg sync.WaitGroup
	for i, g := range generators {
		wg.Add(1)
		go func(i int, g Generator) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = generatorResult{name: g.Name(), err: fmt.Errorf("generator panicked: %v", r)}
				}
			}()
			candidates, err := g.Generate(ctx, req)
			results[i] = generatorResult{name: g.Name(), candidates: candidates, err: err}
		}(i, g)
	}
	wg.Wait()

	return results
}

// weightedCandidate is a candidate after weight application, tagged with
// its source generator.
type weightedCandidate struct {
	product models.Product
	score   float64
	source  string
}

// fuse applies the tier's weight vector, ranks all candidates, and keeps
// the first (highest-scored) occurrence of each product.
func (e *Engine) fuse(results []generatorResult, weights Weights, limit int) []Recommendation {
	var combined []weightedCandidate
	for _, res := range results {
		if res.err != nil {
			continue
		}
		weight, ok := weights[res.name]
		if !ok {
			weight = defaultWeight
		}
		for _, c := range res.candidates {
			combined = append(combined, weightedCandidate{
				product: c.Product,
				score:   c.Score * weight,
				source:  res.name,
			})
		}
	}

	// Stable sort keeps registration order for equal scores, so dedup is
	// deterministic.
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].score > combined[j].score
	})

	seen := make(map[string]struct{}, limit)
	recommendations := make([]Recommendation, 0, limit)
	for _, wc := range combined {
		if _, dup := seen[wc.product.ID]; dup {
			continue
		}
		seen[wc.product.ID] = struct{}{}
		recommendations = append(recommendations, Recommendation{
			Product: wc.product,
			Score:   math.Round(wc.score*10) / 10,
			Source:  wc.source,
		})
		if len(recommendations) >= limit {
			break
		}
	}

	return recommendations
}

// fallback returns a plain popularity ranking, or nothing when even the
// store is unavailable.
func (e *Engine) fallback(ctx context.Context, limit int) []Recommendation {
	products, err := e.store.QueryProducts(ctx, store.Query{Limit: limit})
	if err != nil {
		e.logger.Error().Err(err).Msg("popularity fallback failed")
		return nil
	}

	recommendations := make([]Recommendation, 0, len(products))
	for _, p := range products {
		recommendations = append(recommendations, Recommendation{
			Product: p,
			Score:   math.Round(p.PopularityScore*10) / 10,
			Source:  "popularity_fallback",
		})
	}
	return recommendations
}

// storeHistory records the surfaced products in the session's profile.
func (e *Engine) storeHistory(req Request, recommendations []Recommendation) {
	if req.SessionID == "" || len(recommendations) == 0 {
		return
	}

	interactions := make([]Interaction, 0, len(recommendations))
	now := e.now()
	for _, rec := range recommendations {
		interactions = append(interactions, Interaction{
			ProductID: rec.ID,
			Category:  rec.Category,
			Score:     rec.Score,
			Prefs:     req.Preferences,
			Timestamp: now,
		})
	}
	e.profiles.record(req.SessionID, interactions)
}

// RecordFeedback marks an explicit reaction to a product, feeding the
// collaborative generator.
func (e *Engine) RecordFeedback(sessionID, productID, category string, liked bool) {
	e.profiles.record(sessionID, []Interaction{{
		ProductID: productID,
		Category:  category,
		Liked:     liked,
		Timestamp: e.now(),
	}})
}

// History returns a copy of the session's interaction history.
func (e *Engine) History(sessionID string) []Interaction {
	return e.profiles.historyFor(sessionID)
}

// AnalyticsReport summarizes recommendation activity across sessions.
func (e *Engine) AnalyticsReport() Analytics {
	return e.profiles.analytics()
}
