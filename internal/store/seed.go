// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package store

import (
	"context"
	"fmt"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/models"
)

// SeedProducts returns a small representative catalog used for demo mode and
// tests. The full catalog is generated offline and loaded into SQLite.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID: "FF001", Name: "Classic Smash Burger", Category: "Burgers",
			Description: "Double-smashed patties with caramelized onions and house sauce",
			Ingredients: []string{"beef", "cheddar", "onion", "brioche bun"},
			Price:       8.99, Calories: 740, PrepTime: "9 mins",
			DietaryTags: []string{}, MoodTags: []string{"comfort", "indulgent"},
			Allergens: []string{"gluten", "dairy"}, PopularityScore: 92, SpiceLevel: 1,
		},
		{
			ID: "FF002", Name: "Spicy Korean Fried Chicken", Category: "Fried Chicken",
			Description: "Gochujang-glazed crispy chicken with sesame and scallions",
			Ingredients: []string{"chicken", "gochujang", "sesame", "scallion"},
			Price:       11.49, Calories: 860, PrepTime: "12 mins",
			DietaryTags: []string{}, MoodTags: []string{"adventurous", "spicy"},
			Allergens: []string{"gluten", "sesame"}, PopularityScore: 88, SpiceLevel: 8,
		},
		{
			ID: "FF003", Name: "Margherita Pizza", Category: "Pizza",
			Description: "Wood-fired pizza with fresh mozzarella, basil and tomato",
			Ingredients: []string{"flour", "mozzarella", "tomato", "basil"},
			Price:       10.99, Calories: 820, PrepTime: "14 mins",
			DietaryTags: []string{"vegetarian"}, MoodTags: []string{"comfort", "classic"},
			Allergens: []string{"gluten", "dairy"}, PopularityScore: 85, SpiceLevel: 0,
		},
		{
			ID: "FF004", Name: "Vegan Buddha Bowl", Category: "Salads & Healthy Options",
			Description: "Quinoa, roasted chickpeas, avocado and tahini dressing",
			Ingredients: []string{"quinoa", "chickpeas", "avocado", "tahini"},
			Price:       9.49, Calories: 520, PrepTime: "7 mins",
			DietaryTags: []string{"vegan", "vegetarian", "gluten-free"},
			MoodTags:    []string{"healthy", "fresh"},
			Allergens:   []string{"sesame"}, PopularityScore: 71, SpiceLevel: 1,
		},
		{
			ID: "FF005", Name: "Firecracker Tacos", Category: "Tacos & Wraps",
			Description: "Three tacos with habanero salsa, pickled onion and lime crema",
			Ingredients: []string{"tortilla", "chicken", "habanero", "lime crema"},
			Price:       9.99, Calories: 640, PrepTime: "10 mins",
			DietaryTags: []string{}, MoodTags: []string{"adventurous", "spicy"},
			Allergens: []string{"gluten", "dairy"}, PopularityScore: 79, SpiceLevel: 9,
		},
		{
			ID: "FF006", Name: "Loaded Sweet Potato Fries", Category: "Sides & Appetizers",
			Description: "Crispy sweet potato fries with chipotle aioli",
			Ingredients: []string{"sweet potato", "chipotle", "aioli"},
			Price:       5.49, Calories: 480, PrepTime: "6 mins",
			DietaryTags: []string{"vegetarian"}, MoodTags: []string{"comfort", "spicy"},
			Allergens: []string{"eggs"}, PopularityScore: 74, SpiceLevel: 4,
		},
		{
			ID: "FF007", Name: "Molten Chocolate Lava Cake", Category: "Desserts",
			Description: "Warm chocolate cake with a molten center and vanilla cream",
			Ingredients: []string{"chocolate", "butter", "eggs", "flour"},
			Price:       6.99, Calories: 610, PrepTime: "11 mins",
			DietaryTags: []string{"vegetarian"}, MoodTags: []string{"indulgent", "sweet"},
			Allergens: []string{"gluten", "dairy", "eggs"}, PopularityScore: 90, SpiceLevel: 0,
		},
		{
			ID: "FF008", Name: "Mango Chili Lemonade", Category: "Beverages",
			Description: "Fresh mango lemonade with a tajin chili rim",
			Ingredients: []string{"mango", "lemon", "chili salt"},
			Price:       3.99, Calories: 180, PrepTime: "3 mins",
			DietaryTags: []string{"vegan", "vegetarian", "gluten-free"},
			MoodTags:    []string{"refreshing", "adventurous"},
			Allergens:   []string{}, PopularityScore: 66, SpiceLevel: 3,
		},
		{
			ID: "FF009", Name: "Breakfast Burrito Supreme", Category: "Breakfast Items",
			Description: "Scrambled eggs, chorizo, hash browns and salsa verde",
			Ingredients: []string{"eggs", "chorizo", "potato", "tortilla"},
			Price:       7.49, Calories: 700, PrepTime: "8 mins",
			DietaryTags: []string{}, MoodTags: []string{"comfort", "hearty"},
			Allergens: []string{"gluten", "eggs"}, PopularityScore: 68, SpiceLevel: 5,
		},
		{
			ID: "FF010", Name: "Truffle Mushroom Pizza", Category: "Pizza",
			Description: "Limited time pizza with wild mushrooms and truffle oil",
			Ingredients: []string{"flour", "mushroom", "truffle oil", "mozzarella"},
			Price:       14.99, Calories: 780, PrepTime: "15 mins",
			DietaryTags: []string{"vegetarian"}, MoodTags: []string{"indulgent", "adventurous"},
			Allergens: []string{"gluten", "dairy"}, PopularityScore: 61, SpiceLevel: 0,
			LimitedTime: true, ChefSpecial: true,
		},
		{
			ID: "FF011", Name: "Crispy Cauliflower Wings", Category: "Sides & Appetizers",
			Description: "Buffalo-tossed cauliflower with vegan ranch",
			Ingredients: []string{"cauliflower", "buffalo sauce", "vegan ranch"},
			Price:       6.49, Calories: 390, PrepTime: "9 mins",
			DietaryTags: []string{"vegan", "vegetarian"}, MoodTags: []string{"spicy", "healthy"},
			Allergens: []string{"gluten"}, PopularityScore: 72, SpiceLevel: 6,
		},
		{
			ID: "FF012", Name: "Berry Parfait", Category: "Desserts",
			Description: "Layered yogurt parfait with seasonal berries and granola",
			Ingredients: []string{"yogurt", "berries", "granola", "honey"},
			Price:       4.99, Calories: 320, PrepTime: "4 mins",
			DietaryTags: []string{"vegetarian"}, MoodTags: []string{"healthy", "sweet", "fresh"},
			Allergens: []string{"dairy", "gluten"}, PopularityScore: 64, SpiceLevel: 0,
		},
	}
}

// SeedSQLite loads the seed catalog into a SQLite store.
func SeedSQLite(ctx context.Context, s *SQLiteStore) error {
	for _, p := range SeedProducts() {
		if err := s.UpsertProduct(ctx, &p); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}
	return nil
}
