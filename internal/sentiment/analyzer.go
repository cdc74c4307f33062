// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

// Package sentiment classifies one chat message into an emotion, urgency and
// polarity profile.
//
// The analyzer runs a tiered strategy: an optional compound-polarity scorer
// (the advanced tier), a curated-wordlist rule tier, and a minimal keyword
// fallback. The tier is selected at construction by injecting (or omitting)
// a PolarityScorer; Analyze never returns an error and degrades down the
// tiers instead.
package sentiment

import (
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/metrics"
)

// PolarityScorer is the capability object for the advanced tier. It scores
// a raw message and returns a compound polarity in [-1, 1].
type PolarityScorer interface {
	// Compound returns the compound polarity score for text.
	Compound(text string) (float64, error)
}

// Analyzer classifies messages. Stateless per call and safe for concurrent
// use.
type Analyzer struct {
	scorer PolarityScorer // nil selects the rule tier
	logger zerolog.Logger
}

// NewAnalyzer creates an analyzer. scorer may be nil, in which case the rule
// tier handles overall polarity.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewAnalyzer(scorer PolarityScorer, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		scorer: scorer,
		logger: logger.With().Str("component", "sentiment").Logger(),
	}
}

// Analyze classifies one message. It never fails: any internal error degrades
// to the basic fallback result rather than propagating.
func (a *Analyzer) Analyze(text string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error().Interface("panic", r).Msg("sentiment analysis panicked")
			result = a.fallbackAnalysis(text)
		}
		metrics.RecordSentimentTier(result.TierUsed.String())
	}()

	if a.scorer != nil {
		res, err := a.advancedAnalysis(text)
		if err == nil {
			return res
		}
		a.logger.Warn().Err(err).Msg("advanced tier failed, using rule tier")
	}
	return a.ruleAnalysis(text)
}

// advancedAnalysis delegates overall polarity to the injected scorer and
// merges in the rule tier's food polarity, emotions and urgency.
func (a *Analyzer) advancedAnalysis(text string) (Result, error) {
	compound, err := a.scorer.Compound(text)
	if err != nil {
		return Result{}, err
	}

	overall := PolarityNeutral
	switch {
	case compound >= 0.05:
		overall = PolarityPositive
	case compound <= -0.05:
		overall = PolarityNegative
	}

	lower := strings.ToLower(text)
	abs := compound
	if abs < 0 {
		abs = -abs
	}

	return Result{
		Overall:          overall,
		Confidence:       abs,
		EmotionIntensity: abs,
		Emotions:         detectEmotions(lower),
		FoodPolarity:     foodPolarity(lower),
		UrgencyLevel:     detectUrgency(text),
		SarcasmSuspected: detectSarcasm(lower),
		MixedSignals:     mixedSignals(lower),
		TierUsed:         TierAdvanced,
	}, nil
}

// ruleAnalysis classifies via the curated food vocabulary. Confidence grows
// with the margin between positive and negative matches, capped at 0.8.
func (a *Analyzer) ruleAnalysis(text string) Result {
	lower := strings.ToLower(text)

	pos := countMatches(lower, foodPositiveWords)
	neg := countMatches(lower, foodNegativeWords)

	overall := PolarityNeutral
	confidence := 0.3
	switch {
	case pos > neg:
		overall = PolarityPositive
		confidence = min(0.8, 0.5+float64(pos-neg)*0.1)
	case neg > pos:
		overall = PolarityNegative
		confidence = min(0.8, 0.5+float64(neg-pos)*0.1)
	}

	// Punctuation and caps boost the base intensity.
	intensity := 0.5
	if strings.Contains(text, "!") {
		intensity += 0.2
	}
	if strings.Contains(text, "!!!") {
		intensity += 0.3
	}
	if hasAllCapsWord(text) {
		intensity += 0.2
	}
	intensity = min(1.0, intensity)

	return Result{
		Overall:          overall,
		Confidence:       confidence,
		EmotionIntensity: intensity,
		Emotions:         detectEmotions(lower),
		FoodPolarity:     foodPolarity(lower),
		UrgencyLevel:     detectUrgency(text),
		SarcasmSuspected: detectSarcasm(lower),
		MixedSignals:     pos > 0 && neg > 0,
		TierUsed:         TierRule,
	}
}

// fallbackAnalysis is the minimal, always-safe result shape.
func (a *Analyzer) fallbackAnalysis(text string) Result {
	lower := strings.ToLower(text)

	overall := PolarityNeutral
	switch {
	case countMatches(lower, fallbackPositive) > 0:
		overall = PolarityPositive
	case countMatches(lower, fallbackNegative) > 0:
		overall = PolarityNegative
	}

	return Result{
		Overall:          overall,
		Confidence:       0.5,
		EmotionIntensity: 0.5,
		Emotions:         map[string]float64{"general": 0.5},
		FoodPolarity:     overall,
		UrgencyLevel:     UrgencyMedium,
		TierUsed:         TierFallback,
	}
}

// detectEmotions scores each named emotion by summing indicator weights:
// 0.3 for indicators longer than 3 characters, 0.2 otherwise, capped at 1.0.
func detectEmotions(lower string) map[string]float64 {
	emotions := make(map[string]float64, len(emotionOrder))
	for _, emotion := range emotionOrder {
		score := 0.0
		for _, ind := range emotionIndicators[emotion] {
			if strings.Contains(lower, ind) {
				if len(ind) > 3 {
					score += 0.3
				} else {
					score += 0.2
				}
			}
		}
		emotions[emotion] = min(score, 1.0)
	}
	return emotions
}

// foodPolarity derives polarity from the food vocabulary alone.
func foodPolarity(lower string) Polarity {
	pos := countMatches(lower, foodPositiveWords)
	neg := countMatches(lower, foodNegativeWords)
	switch {
	case pos > neg:
		return PolarityPositive
	case neg > pos:
		return PolarityNegative
	default:
		return PolarityNeutral
	}
}

// detectUrgency checks tiers high to low; absent any indicator, exclamation
// or caps imply medium urgency.
func detectUrgency(text string) Urgency {
	lower := strings.ToLower(text)
	for _, tier := range urgencyTiers {
		for _, ind := range tier.indicators {
			if strings.Contains(lower, ind) {
				return tier.level
			}
		}
	}
	if strings.Contains(text, "!") || hasAllCapsWord(text) {
		return UrgencyMedium
	}
	return UrgencyLow
}

func detectSarcasm(lower string) bool {
	for _, phrase := range sarcasmPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func mixedSignals(lower string) bool {
	return countMatches(lower, foodPositiveWords) > 0 &&
		countMatches(lower, foodNegativeWords) > 0
}

func countMatches(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}

// hasAllCapsWord reports whether any whitespace-separated word consists of
// letters that are all uppercase (at least one letter required).
func hasAllCapsWord(text string) bool {
	for _, word := range strings.Fields(text) {
		hasLetter := false
		allUpper := true
		for _, r := range word {
			if unicode.IsLetter(r) {
				hasLetter = true
				if !unicode.IsUpper(r) {
					allUpper = false
					break
				}
			}
		}
		if hasLetter && allUpper {
			return true
		}
	}
	return false
}
