// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package recommend

import (
	"context"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/models"
)

// Request represents one recommendation request for a session.
type Request struct {
	// SessionID identifies the conversation session.
	SessionID string `json:"session_id"`

	// Preferences are the extracted user preferences for this session.
	Preferences models.Preferences `json:"preferences"`

	// InterestScore is the session's current interest score (0-100).
	// It selects the fusion weight vector, not individual candidates.
	InterestScore float64 `json:"interest_score"`

	// Limit is the number of recommendations to return.
	// Defaults to DefaultLimit if zero.
	Limit int `json:"limit,omitempty"`
}

// DefaultLimit is the number of recommendations returned when the
// request does not specify one.
const DefaultLimit = 5

// Candidate is a product with a generator-local score. Candidate scores
// are comparable within one generator but not across generators; the
// engine's weight vector bridges the scales.
type Candidate struct {
	Product models.Product
	Score   float64
}

// Recommendation is a final ranked product with its fused score and the
// generator that sourced it.
type Recommendation struct {
	models.Product

	// Score is the weighted fusion score, rounded to one decimal.
	Score float64 `json:"recommendation_score"`

	// Source names the generator the winning candidate came from.
	Source string `json:"recommendation_source"`
}

// Outcome reports which path produced a recommendation set.
type Outcome int

const (
	// OutcomeOK means every registered generator contributed.
	OutcomeOK Outcome = iota
	// OutcomeDegraded means at least one generator failed and the rest
	// were fused without it.
	OutcomeDegraded
	// OutcomeFallback means generation failed entirely and the result is
	// a popularity ranking (possibly empty).
	OutcomeFallback
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeDegraded:
		return "degraded"
	case OutcomeFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Response is the recommendation result for one request.
type Response struct {
	// Recommendations is the ordered, deduplicated product list.
	Recommendations []Recommendation `json:"recommendations"`

	// Tier is the interest tier that selected the weight vector.
	Tier Tier `json:"interest_tier"`

	// Outcome marks whether generation ran fully, degraded, or fell back.
	Outcome Outcome `json:"-"`

	// GeneratorErrors maps failed generator names to their error text.
	GeneratorErrors map[string]string `json:"-"`
}

// Generator produces scored candidate products for a request. Generators
// must be safe for concurrent use; the engine invokes them in parallel.
type Generator interface {
	// Name returns the generator identifier (e.g. "preference_matching").
	Name() string

	// Generate returns scored candidates for the request. An empty slice
	// with a nil error means the generator had nothing to contribute.
	Generate(ctx context.Context, req Request) ([]Candidate, error)
}

// HistoryProvider exposes a session's recommendation history to generators
// that learn from past interactions.
type HistoryProvider interface {
	// LikedCategories returns the distinct categories of products the
	// session responded positively to, in deterministic order.
	LikedCategories(sessionID string) []string

	// SeenCategories returns the distinct categories of every product the
	// session has received, in deterministic order. Empty for sessions
	// without interaction history.
	SeenCategories(sessionID string) []string
}

// Tier is a named interest band. The tier selects which weight vector
// fuses the generators.
type Tier string

const (
	// TierHot covers scores >= 80: ready to order.
	TierHot Tier = "hot"
	// TierWarm covers scores in [60, 80): strong interest.
	TierWarm Tier = "warm"
	// TierCurious covers scores in [40, 60): discovery mode.
	TierCurious Tier = "curious"
	// TierCold covers scores < 40: browsing or disengaged.
	TierCold Tier = "cold"
)

// TierStrategy maps an interest score to a tier. Injecting the strategy
// keeps the band boundaries replaceable without touching fusion.
type TierStrategy interface {
	Tier(score float64) Tier
}

// ThresholdStrategy is the default TierStrategy: fixed score boundaries
// between adjacent tiers.
type ThresholdStrategy struct {
	// Hot is the minimum score for TierHot.
	Hot float64
	// Warm is the minimum score for TierWarm.
	Warm float64
	// Curious is the minimum score for TierCurious.
	Curious float64
}

// DefaultThresholds returns the standard 80/60/40 band boundaries.
func DefaultThresholds() ThresholdStrategy {
	return ThresholdStrategy{Hot: 80, Warm: 60, Curious: 40}
}

// Tier implements TierStrategy.
func (s ThresholdStrategy) Tier(score float64) Tier {
	switch {
	case score >= s.Hot:
		return TierHot
	case score >= s.Warm:
		return TierWarm
	case score >= s.Curious:
		return TierCurious
	default:
		return TierCold
	}
}

// Weights maps generator names to fusion multipliers. Generators missing
// from the map fuse at defaultWeight.
type Weights map[string]float64

// defaultWeight applies to candidates from generators the active weight
// vector does not name.
const defaultWeight = 0.5

// Generator names, shared between the weight tables and the generators
// subpackage.
const (
	GeneratorPreference    = "preference_matching"
	GeneratorMood          = "mood_based"
	GeneratorBudget        = "budget_optimization"
	GeneratorDietary       = "dietary_intelligence"
	GeneratorCollaborative = "collaborative"
)

// DefaultTierWeights returns the per-tier fusion weights. Hot sessions
// favor precise preference and dietary matches; cold sessions lean on
// budget value and popularity-driven collaborative picks.
func DefaultTierWeights() map[Tier]Weights {
	return map[Tier]Weights{
		TierHot: {
			GeneratorPreference:    1.2,
			GeneratorMood:          1.0,
			GeneratorBudget:        0.8,
			GeneratorDietary:       1.1,
			GeneratorCollaborative: 0.9,
		},
		TierWarm: {
			GeneratorPreference:    1.0,
			GeneratorMood:          1.1,
			GeneratorBudget:        1.0,
			GeneratorDietary:       1.0,
			GeneratorCollaborative: 0.8,
		},
		TierCurious: {
			GeneratorPreference:    0.9,
			GeneratorMood:          1.2,
			GeneratorBudget:        1.1,
			GeneratorDietary:       0.9,
			GeneratorCollaborative: 1.0,
		},
		TierCold: {
			GeneratorPreference:    0.8,
			GeneratorMood:          0.9,
			GeneratorBudget:        1.3,
			GeneratorDietary:       0.8,
			GeneratorCollaborative: 1.2,
		},
	}
}
