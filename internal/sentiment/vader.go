// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package sentiment

import "github.com/jonreiter/govader"

// VADERScorer implements PolarityScorer with the VADER lexicon. It backs the
// advanced tier in production builds.
type VADERScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVADERScorer creates a VADER-backed polarity scorer.
func NewVADERScorer() *VADERScorer {
	return &VADERScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns the VADER compound polarity score in [-1, 1].
func (v *VADERScorer) Compound(text string) (float64, error) {
	return v.analyzer.PolarityScores(text).Compound, nil
}
