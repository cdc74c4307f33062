// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package sentiment

// Polarity is a three-way sentiment classification.
type Polarity string

const (
	// PolarityPositive indicates positive sentiment.
	PolarityPositive Polarity = "positive"
	// PolarityNegative indicates negative sentiment.
	PolarityNegative Polarity = "negative"
	// PolarityNeutral indicates neutral or undetermined sentiment.
	PolarityNeutral Polarity = "neutral"
)

// Urgency is a three-tier urgency classification.
type Urgency string

const (
	// UrgencyLow indicates no time pressure.
	UrgencyLow Urgency = "low"
	// UrgencyMedium indicates moderate time pressure.
	UrgencyMedium Urgency = "medium"
	// UrgencyHigh indicates immediate time pressure.
	UrgencyHigh Urgency = "high"
)

// Tier identifies which analysis strategy produced a Result. Callers and
// tests use it to assert which path executed instead of inferring it from
// the output shape.
type Tier int

const (
	// TierAdvanced is the lexicon compound-polarity scorer.
	TierAdvanced Tier = iota
	// TierRule is the curated-wordlist rule analysis.
	TierRule
	// TierFallback is the minimal keyword fallback.
	TierFallback
)

// String returns a human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierAdvanced:
		return "advanced"
	case TierRule:
		return "rule"
	case TierFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Result is the per-call output of the analyzer. All fields are always
// populated regardless of which tier produced them.
type Result struct {
	// Overall is the overall message polarity.
	Overall Polarity `json:"overall_sentiment"`

	// Confidence is the classification confidence in [0, 1].
	Confidence float64 `json:"confidence_score"`

	// EmotionIntensity is the aggregate emotional intensity in [0, 1].
	EmotionIntensity float64 `json:"emotion_intensity"`

	// Emotions maps named emotions to intensities in [0, 1].
	Emotions map[string]float64 `json:"specific_emotions"`

	// FoodPolarity is the polarity restricted to the food vocabulary.
	FoodPolarity Polarity `json:"food_specific_sentiment"`

	// UrgencyLevel is the detected urgency tier.
	UrgencyLevel Urgency `json:"urgency_level"`

	// SarcasmSuspected flags presence of known sarcasm phrases.
	SarcasmSuspected bool `json:"sarcasm_detected"`

	// MixedSignals flags both positive and negative food words in one
	// message.
	MixedSignals bool `json:"mixed_sentiment"`

	// TierUsed identifies the strategy that produced this result.
	TierUsed Tier `json:"-"`
}
