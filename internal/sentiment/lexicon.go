// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package sentiment

// Curated food-domain vocabulary. Matching is substring containment on the
// lowercased message, so multi-word entries like "mouth-watering" work
// without tokenization.

var foodPositiveWords = []string{
	"love", "amazing", "delicious", "fantastic", "perfect", "incredible",
	"awesome", "outstanding", "excellent", "wonderful", "craving", "hungry",
	"yum", "yummy", "tasty", "flavorful", "satisfying", "mouth-watering",
	"divine", "heavenly", "scrumptious", "appetizing", "fresh", "juicy",
	"crispy", "tender", "rich", "creamy", "spicy", "savory", "sweet",
}

var foodNegativeWords = []string{
	"hate", "disgusting", "terrible", "awful", "horrible", "nasty", "gross",
	"disappointing", "bland", "tasteless", "stale", "overcooked", "undercooked",
	"soggy", "dry", "burnt", "salty", "bitter", "sour", "expired", "rotten",
	"overpriced", "expensive", "cheap", "bad",
}

// emotionIndicators maps named emotions to indicator substrings. Indicator
// weight is 0.3 when longer than 3 characters, 0.2 otherwise; per-emotion
// scores cap at 1.0.
var emotionIndicators = map[string][]string{
	"excitement":   {"!", "!!", "!!!", "excited", "pumped", "thrilled", "stoked", "ecstatic", "amazing"},
	"frustration":  {"frustrated", "annoyed", "irritated", "fed up", "angry", "mad"},
	"curiosity":    {"?", "wondering", "curious", "interested", "what about", "tell me"},
	"satisfaction": {"satisfied", "content", "happy", "pleased", "glad", "good"},
	"uncertainty":  {"maybe", "perhaps", "not sure", "uncertain", "might", "possibly"},
	"enthusiasm":   {"absolutely", "definitely", "totally", "completely", "really", "super"},
}

// emotionOrder fixes the iteration order for deterministic output.
var emotionOrder = []string{
	"excitement", "frustration", "curiosity", "satisfaction", "uncertainty", "enthusiasm",
}

// urgencyTiers are checked high to medium to low; first hit wins.
var urgencyTiers = []struct {
	level      Urgency
	indicators []string
}{
	{UrgencyHigh, []string{"asap", "urgent", "immediately", "right now", "hurry", "rush", "quick", "fast", "starving"}},
	{UrgencyMedium, []string{"soon", "quickly", "when possible", "hungry"}},
	{UrgencyLow, []string{"whenever", "no rush", "take your time", "eventually", "later"}},
}

var sarcasmPhrases = []string{
	"oh great", "just wonderful", "how nice", "sure thing",
	"yeah right", "absolutely not", "just perfect",
}

// Minimal keyword lists for the basic fallback tier.
var (
	fallbackPositive = []string{"love", "great", "amazing", "perfect", "awesome"}
	fallbackNegative = []string{"hate", "bad", "terrible", "awful", "horrible"}
)
