// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package models

import "time"

// Categories is the fixed set of catalog categories.
var Categories = []string{
	"Burgers", "Pizza", "Fried Chicken", "Tacos & Wraps",
	"Sides & Appetizers", "Beverages", "Desserts",
	"Salads & Healthy Options", "Breakfast Items", "Limited Time Specials",
}

// ValidCategory reports whether name is one of the fixed catalog categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Product is a catalog entity. Immutable from the core's perspective;
// owned by the product store.
type Product struct {
	// ID is the unique, stable product identifier (e.g. "FF001").
	ID string `json:"product_id"`

	// Name is the display name.
	Name string `json:"name"`

	// Category is one of the fixed catalog categories.
	Category string `json:"category"`

	// Description is free text used by the allergen heuristics and the
	// chat responder.
	Description string `json:"description"`

	// Ingredients lists ingredient names.
	Ingredients []string `json:"ingredients"`

	// Price is the non-negative price in currency units.
	Price float64 `json:"price"`

	// Calories is the calorie count.
	Calories int `json:"calories"`

	// PrepTime is the preparation time label (e.g. "8 mins").
	PrepTime string `json:"prep_time"`

	// DietaryTags holds tags like "vegetarian", "vegan", "gluten-free".
	DietaryTags []string `json:"dietary_tags"`

	// MoodTags holds tags like "comfort", "adventurous", "spicy".
	MoodTags []string `json:"mood_tags"`

	// Allergens lists allergen names like "dairy", "gluten", "eggs".
	Allergens []string `json:"allergens"`

	// PopularityScore is a score in [0, 100].
	PopularityScore float64 `json:"popularity_score"`

	// SpiceLevel is an integer in [0, 10].
	SpiceLevel int `json:"spice_level"`

	// ChefSpecial marks chef recommendations.
	ChefSpecial bool `json:"chef_special"`

	// LimitedTime marks limited-time offers.
	LimitedTime bool `json:"limited_time"`
}

// HasDietaryTag reports whether the product carries the given dietary tag
// (case-insensitive substring match, mirroring the store's LIKE semantics).
func (p *Product) HasDietaryTag(tag string) bool {
	return containsTagFold(p.DietaryTags, tag)
}

// HasMoodTag reports whether the product carries the given mood tag.
func (p *Product) HasMoodTag(tag string) bool {
	return containsTagFold(p.MoodTags, tag)
}

// Preferences is the ephemeral per-message preference set supplied by the
// upstream extractor. Zero-valued fields mean "not stated".
type Preferences struct {
	// Categories restricts matching to the given catalog categories.
	Categories []string `json:"categories,omitempty"`

	// Dietary lists requested dietary restrictions.
	Dietary []string `json:"dietary,omitempty"`

	// Moods lists requested mood tags.
	Moods []string `json:"moods,omitempty"`

	// MaxBudget is the stated budget ceiling; zero means unstated.
	MaxBudget float64 `json:"max_budget,omitempty"`
}

// HasBudget reports whether a budget ceiling was stated.
func (p *Preferences) HasBudget() bool {
	return p.MaxBudget > 0
}

// IsEmpty reports whether no preference signal was extracted.
func (p *Preferences) IsEmpty() bool {
	return len(p.Categories) == 0 && len(p.Dietary) == 0 &&
		len(p.Moods) == 0 && !p.HasBudget()
}

// ConversationTurn is one recorded chat exchange.
type ConversationTurn struct {
	SessionID           string      `json:"session_id"`
	UserMessage         string      `json:"user_message"`
	BotResponse         string      `json:"bot_response"`
	InterestScore       float64     `json:"interest_score"`
	RecommendedProducts []string    `json:"recommended_products,omitempty"`
	Preferences         Preferences `json:"user_preferences"`
	Timestamp           time.Time   `json:"timestamp"`
}
