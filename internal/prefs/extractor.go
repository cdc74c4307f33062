// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

// Package prefs extracts the preference set from a raw chat message.
//
// Extraction is deliberately keyword-based: the conversational surface only
// needs coarse category, dietary, mood, and budget signals, and keywords
// keep it deterministic and dependency-free.
package prefs

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/models"
)

// budgetPattern captures the dollar amount in phrasings like "under $15"
// or "under 15".
var budgetPattern = regexp.MustCompile(`under \$?(\d+(?:\.\d+)?)`)

// categoryRule maps trigger keywords to a catalog category. Rules are
// evaluated in order; the first hit wins.
type categoryRule struct {
	keywords []string
	category string
}

var categoryRules = []categoryRule{
	{[]string{"pizza"}, "Pizza"},
	{[]string{"burger"}, "Burgers"},
	{[]string{"dessert", "sweet"}, "Desserts"},
	{[]string{"drink", "beverage"}, "Beverages"},
	{[]string{"salad", "healthy"}, "Salads & Healthy Options"},
	{[]string{"taco", "wrap"}, "Tacos & Wraps"},
	{[]string{"fried chicken", "wings"}, "Fried Chicken"},
	{[]string{"breakfast"}, "Breakfast Items"},
}

// Extract derives the preference set from one message. Unsignaled fields
// stay zero; an all-zero result means the message carried no preference.
func Extract(message string) models.Preferences {
	lower := strings.ToLower(message)
	var prefs models.Preferences

	for _, rule := range categoryRules {
		if containsAny(lower, rule.keywords) {
			prefs.Categories = []string{rule.category}
			break
		}
	}

	// "vegetarian" first: vegan is the stricter claim, so only an explicit
	// "vegan" without "vegetarian" maps to it.
	switch {
	case strings.Contains(lower, "vegetarian"):
		prefs.Dietary = []string{"vegetarian"}
	case strings.Contains(lower, "vegan"):
		prefs.Dietary = []string{"vegan"}
	}

	switch {
	case strings.Contains(lower, "spicy"), strings.Contains(lower, "hot"):
		prefs.Moods = []string{"spicy"}
	case strings.Contains(lower, "sweet"):
		prefs.Moods = []string{"sweet"}
	}

	if m := budgetPattern.FindStringSubmatch(lower); m != nil {
		if budget, err := strconv.ParseFloat(m[1], 64); err == nil {
			prefs.MaxBudget = budget
		}
	}

	return prefs
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
