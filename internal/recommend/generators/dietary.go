// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package generators

import (
	"context"
	"fmt"
	"strings"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/models"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/recommend"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/store"
)

// dietaryMatchScore is the flat score for products that pass the strict
// dietary filter. Restriction compliance is binary, so compliant products
// rank uniformly high and the other generators break ties.
const dietaryMatchScore = 95.0

// veganConflicts are allergens incompatible with a vegan restriction.
var veganConflicts = []string{"dairy", "eggs", "honey"}

// meatWords flag non-vegetarian ingredients.
var meatWords = []string{"beef", "chicken", "pork", "fish", "meat"}

// DietaryIntelligence strictly filters for dietary restrictions and
// screens out allergen conflicts. Contributes nothing when no restriction
// was extracted.
type DietaryIntelligence struct {
	store store.ProductStore
}

// NewDietaryIntelligence creates the dietary filtering generator.
func NewDietaryIntelligence(st store.ProductStore) *DietaryIntelligence {
	return &DietaryIntelligence{store: st}
}

// Name returns the generator identifier.
func (g *DietaryIntelligence) Name() string {
	return recommend.GeneratorDietary
}

// Generate implements recommend.Generator.
func (g *DietaryIntelligence) Generate(ctx context.Context, req recommend.Request) ([]recommend.Candidate, error) {
	dietary := req.Preferences.Dietary
	if len(dietary) == 0 {
		return nil, nil
	}

	var candidates []recommend.Candidate
	for _, diet := range dietary {
		products, err := g.store.QueryProducts(ctx, store.Query{
			DietaryTag: diet,
			Limit:      overFetch(req.Limit),
		})
		if err != nil {
			return nil, fmt.Errorf("dietary query %q: %w", diet, err)
		}

		for i := range products {
			if !allergenCompatible(&products[i], dietary) {
				continue
			}
			candidates = append(candidates, recommend.Candidate{
				Product: products[i],
				Score:   dietaryMatchScore,
			})
		}
	}
	return candidates, nil
}

// allergenCompatible reports whether the product is safe for the stated
// restrictions: vegan sessions reject animal-derived allergens, vegetarian
// sessions reject meat ingredients.
func allergenCompatible(p *models.Product, dietary []string) bool {
	for _, diet := range dietary {
		switch strings.ToLower(diet) {
		case "vegan":
			for _, allergen := range p.Allergens {
				for _, conflict := range veganConflicts {
					if strings.EqualFold(allergen, conflict) {
						return false
					}
				}
			}
		case "vegetarian":
			for _, ingredient := range p.Ingredients {
				lower := strings.ToLower(ingredient)
				for _, meat := range meatWords {
					if strings.Contains(lower, meat) {
						return false
					}
				}
			}
		}
	}
	return true
}
