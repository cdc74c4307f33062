// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package generators

import (
	"context"
	"fmt"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/models"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/recommend"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/store"
)

// PreferenceMatching scores products against the full preference set:
// category, mood tags, dietary tags, and budget fit. The more axes the
// user stated, the higher the score multiplier, rewarding products that
// survive a narrower filter.
type PreferenceMatching struct {
	store store.ProductStore
}

// NewPreferenceMatching creates the preference matching generator.
func NewPreferenceMatching(st store.ProductStore) *PreferenceMatching {
	return &PreferenceMatching{store: st}
}

// Name returns the generator identifier.
func (g *PreferenceMatching) Name() string {
	return recommend.GeneratorPreference
}

// Generate implements recommend.Generator.
func (g *PreferenceMatching) Generate(ctx context.Context, req recommend.Request) ([]recommend.Candidate, error) {
	prefs := req.Preferences

	q := store.Query{
		Categories: prefs.Categories,
		Limit:      overFetch(req.Limit),
	}
	q.TagTermsAll = append(q.TagTermsAll, prefs.Moods...)
	q.TagTermsAll = append(q.TagTermsAll, prefs.Dietary...)

	products, err := g.store.QueryProducts(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("preference matching query: %w", err)
	}

	multiplier := scoreMultiplier(prefs)
	candidates := make([]recommend.Candidate, 0, len(products))
	for i := range products {
		candidates = append(candidates, recommend.Candidate{
			Product: products[i],
			Score:   matchScore(&products[i], &prefs) * multiplier,
		})
	}
	return candidates, nil
}

// scoreMultiplier grows with each preference axis the user narrowed by.
func scoreMultiplier(prefs models.Preferences) float64 {
	multiplier := 1.0
	if len(prefs.Categories) > 0 {
		multiplier += 0.3
	}
	multiplier += 0.2 * float64(len(prefs.Moods))
	multiplier += 0.2 * float64(len(prefs.Dietary))
	return multiplier
}

// matchScore rates one product against the preferences on a 100-point
// scale before the multiplier is applied.
func matchScore(p *models.Product, prefs *models.Preferences) float64 {
	score := 50.0

	for _, category := range prefs.Categories {
		if p.Category == category {
			score += 20
			break
		}
	}

	for _, mood := range prefs.Moods {
		if p.HasMoodTag(mood) {
			score += 15
		}
	}
	for _, diet := range prefs.Dietary {
		if p.HasDietaryTag(diet) {
			score += 15
		}
	}

	if prefs.HasBudget() {
		if p.Price <= prefs.MaxBudget {
			score += 10
		} else {
			score -= 20
		}
	}

	score += p.PopularityScore / 100 * 10

	return capScore(score)
}
