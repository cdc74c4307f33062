// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

// Package generators implements the candidate generators for the hybrid
// recommendation engine.
//
// Each generator implements the recommend.Generator interface, queries the
// product store independently, and scores candidates on its own scale.
// Over-fetching (twice the requested limit) leaves the engine room to
// deduplicate across generators without starving the final list.
package generators

import (
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/recommend"
)

// overFetch widens a generator's store query beyond the final limit so
// cross-generator duplicates don't shrink the fused result.
func overFetch(limit int) int {
	return limit * 2
}

// capScore clamps a candidate score to the 100-point ceiling.
func capScore(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}

// Ensure all generators implement the interface.
var (
	_ recommend.Generator = (*PreferenceMatching)(nil)
	_ recommend.Generator = (*MoodBased)(nil)
	_ recommend.Generator = (*BudgetOptimization)(nil)
	_ recommend.Generator = (*DietaryIntelligence)(nil)
	_ recommend.Generator = (*Collaborative)(nil)
)
