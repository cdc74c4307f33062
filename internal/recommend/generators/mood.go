// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package generators

import (
	"context"
	"fmt"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/recommend"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/store"
)

// MoodBased maps the customer's stated moods to product mood tags.
// Contributes nothing when no mood was extracted.
type MoodBased struct {
	store store.ProductStore
}

// NewMoodBased creates the mood-based filtering generator.
func NewMoodBased(st store.ProductStore) *MoodBased {
	return &MoodBased{store: st}
}

// Name returns the generator identifier.
func (g *MoodBased) Name() string {
	return recommend.GeneratorMood
}

// Generate implements recommend.Generator.
func (g *MoodBased) Generate(ctx context.Context, req recommend.Request) ([]recommend.Candidate, error) {
	moods := req.Preferences.Moods
	if len(moods) == 0 {
		return nil, nil
	}

	products, err := g.store.QueryProducts(ctx, store.Query{
		MoodTagsAny: moods,
		Limit:       overFetch(req.Limit),
	})
	if err != nil {
		return nil, fmt.Errorf("mood query: %w", err)
	}

	candidates := make([]recommend.Candidate, 0, len(products))
	for i := range products {
		p := &products[i]

		matches := 0
		for _, mood := range moods {
			if p.HasMoodTag(mood) {
				matches++
			}
		}

		score := 40.0 + float64(matches)*20 + p.PopularityScore/100*15
		candidates = append(candidates, recommend.Candidate{
			Product: products[i],
			Score:   capScore(score),
		})
	}
	return candidates, nil
}
