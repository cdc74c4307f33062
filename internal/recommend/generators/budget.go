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

// DefaultBudgetCeiling applies when the user never stated a budget, so
// the value ranking still excludes outliers.
const DefaultBudgetCeiling = 50.0

// BudgetOptimization surfaces the best popularity-per-dollar value within
// the stated (or default) budget. Over-budget products are excluded, not
// penalized.
type BudgetOptimization struct {
	store   store.ProductStore
	ceiling float64
}

// NewBudgetOptimization creates the budget generator. A non-positive
// ceiling falls back to DefaultBudgetCeiling.
func NewBudgetOptimization(st store.ProductStore, ceiling float64) *BudgetOptimization {
	if ceiling <= 0 {
		ceiling = DefaultBudgetCeiling
	}
	return &BudgetOptimization{store: st, ceiling: ceiling}
}

// Name returns the generator identifier.
func (g *BudgetOptimization) Name() string {
	return recommend.GeneratorBudget
}

// Generate implements recommend.Generator.
func (g *BudgetOptimization) Generate(ctx context.Context, req recommend.Request) ([]recommend.Candidate, error) {
	budget := req.Preferences.MaxBudget
	if budget <= 0 {
		budget = g.ceiling
	}

	products, err := g.store.QueryProducts(ctx, store.Query{
		MaxPrice:     budget,
		OrderByValue: true,
		Limit:        overFetch(req.Limit),
	})
	if err != nil {
		return nil, fmt.Errorf("budget query: %w", err)
	}

	candidates := make([]recommend.Candidate, 0, len(products))
	for i := range products {
		p := &products[i]

		price := p.Price
		if price < 1 {
			price = 1
		}

		candidates = append(candidates, recommend.Candidate{
			Product: products[i],
			Score:   p.PopularityScore / price * 10,
		})
	}
	return candidates, nil
}
