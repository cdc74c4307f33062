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

// collaborativeBaseScore is the flat score for products sharing a category
// with the session's liked history.
const collaborativeBaseScore = 70.0

// Collaborative recommends from the session's past categories, preferring
// those it liked over those it merely received. Sessions without any
// interaction history get a popularity ranking instead, scaled so an
// unpersonalized pick never outranks a strong personalized match.
type Collaborative struct {
	store   store.ProductStore
	history recommend.HistoryProvider
}

// NewCollaborative creates the collaborative generator. history provides
// the session's past categories, typically the engine's profile store.
func NewCollaborative(st store.ProductStore, history recommend.HistoryProvider) *Collaborative {
	return &Collaborative{store: st, history: history}
}

// Name returns the generator identifier.
func (g *Collaborative) Name() string {
	return recommend.GeneratorCollaborative
}

// Generate implements recommend.Generator.
func (g *Collaborative) Generate(ctx context.Context, req recommend.Request) ([]recommend.Candidate, error) {
	var categories []string
	if g.history != nil {
		categories = g.history.LikedCategories(req.SessionID)
		if len(categories) == 0 {
			categories = g.history.SeenCategories(req.SessionID)
		}
	}

	if len(categories) == 0 {
		return g.popularPicks(ctx, req.Limit)
	}

	products, err := g.store.QueryProducts(ctx, store.Query{
		Categories: categories,
		Limit:      req.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("collaborative query: %w", err)
	}

	candidates := make([]recommend.Candidate, 0, len(products))
	for i := range products {
		candidates = append(candidates, recommend.Candidate{
			Product: products[i],
			Score:   collaborativeBaseScore,
		})
	}
	return candidates, nil
}

// popularPicks is the cold-start path: top products by popularity, scored
// on an 80-point ceiling.
func (g *Collaborative) popularPicks(ctx context.Context, limit int) ([]recommend.Candidate, error) {
	products, err := g.store.QueryProducts(ctx, store.Query{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("popularity query: %w", err)
	}

	candidates := make([]recommend.Candidate, 0, len(products))
	for i := range products {
		candidates = append(candidates, recommend.Candidate{
			Product: products[i],
			Score:   products[i].PopularityScore / 100 * 80,
		})
	}
	return candidates, nil
}
