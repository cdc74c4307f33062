// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package scoring

import (
	"regexp"
	"strings"
)

// Engagement factor deltas. The detector list below wires each factor to its
// trigger; factors are independent and any number may fire on one message.
const (
	DeltaSpecificPreferences = 15.0
	DeltaDietaryRestrictions = 10.0
	DeltaBudgetMention       = 5.0
	DeltaMoodIndication      = 20.0
	DeltaQuestionAsking      = 10.0
	DeltaEnthusiasmWords     = 8.0
	DeltaPriceInquiry        = 25.0
	DeltaOrderIntent         = 30.0

	DeltaHesitation    = -10.0
	DeltaBudgetConcern = -15.0
	DeltaRejection     = -25.0

	// Declared in the factor configuration but not evaluated by any
	// detector. Intentionally unused until product requirements define
	// their trigger conditions.
	DeltaDietaryConflict = -20.0
	DeltaDelayResponse   = -5.0
)

// detector is one engagement signal: a named factor, its score delta, and
// the predicate that triggers it against the lowercased message.
type detector struct {
	factor string
	delta  float64
	match  func(lower string) bool
}

var budgetPattern = regexp.MustCompile(`under \$?\d+|budget|cheap|affordable|inexpensive`)

// detectors is the fixed, ordered factor list. Order only affects the order
// of recorded factor deltas, not the summed result.
var detectors = []detector{
	{"specific_preferences", DeltaSpecificPreferences, containsAnyOf(
		"love", "like", "favorite", "prefer", "want", "craving", "enjoy", "spicy", "sweet")},
	{"dietary_restrictions", DeltaDietaryRestrictions, containsAnyOf(
		"vegetarian", "vegan", "gluten-free", "keto", "allergic", "dairy-free")},
	{"budget_mention", DeltaBudgetMention, budgetPattern.MatchString},
	{"mood_indication", DeltaMoodIndication, containsAnyOf(
		"feeling", "mood", "adventurous", "comfort", "healthy", "hungry", "starving")},
	{"question_asking", DeltaQuestionAsking, containsAnyOf(
		"?", "what", "how", "when", "where")},
	{"enthusiasm_words", DeltaEnthusiasmWords, containsAnyOf(
		"amazing", "awesome", "perfect", "great", "love it", "fantastic", "excellent", "!")},
	{"price_inquiry", DeltaPriceInquiry, containsAnyOf(
		"cost", "price", "how much", "expensive", "worth")},
	{"order_intent", DeltaOrderIntent, containsAnyOf(
		"order", "buy", "get", "take", "i'll have", "purchase", "add to cart")},

	{"hesitation", DeltaHesitation, containsAnyOf(
		"maybe", "not sure", "uncertain", "i don't know", "possibly")},
	{"budget_concern", DeltaBudgetConcern, containsAnyOf(
		"too expensive", "can't afford", "too much", "pricey", "costly")},
	{"rejection", DeltaRejection, containsAnyOf(
		"don't like", "hate", "dislike", "not interested", "no thanks")},
}

func containsAnyOf(keywords ...string) func(string) bool {
	return func(lower string) bool {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}
}

// evaluateFactors runs every detector against the message and returns the
// per-factor deltas plus their sum.
func evaluateFactors(message string) (map[string]float64, float64) {
	lower := strings.ToLower(message)
	deltas := make(map[string]float64)
	total := 0.0
	for _, d := range detectors {
		if d.match(lower) {
			deltas[d.factor] = d.delta
			total += d.delta
		}
	}
	return deltas, total
}
