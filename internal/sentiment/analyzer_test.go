// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package sentiment

import (
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
)

// stubScorer implements PolarityScorer for testing.
type stubScorer struct {
	compound float64
	err      error
}

func (s *stubScorer) Compound(string) (float64, error) {
	return s.compound, s.err
}

// panicScorer forces the recovery path.
type panicScorer struct{}

func (panicScorer) Compound(string) (float64, error) {
	panic("scorer blew up")
}

func newTestAnalyzer(scorer PolarityScorer) *Analyzer {
	return NewAnalyzer(scorer, zerolog.Nop())
}

func TestRuleTierPositiveConfidence(t *testing.T) {
	a := newTestAnalyzer(nil)

	// Three positive food words, zero negative: confidence caps the
	// margin formula at min(0.8, 0.5+0.3).
	res := a.Analyze("this is delicious, tasty and fresh")

	if res.Overall != PolarityPositive {
		t.Errorf("Overall = %q, want positive", res.Overall)
	}
	if math.Abs(res.Confidence-0.8) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.8", res.Confidence)
	}
	if res.TierUsed != TierRule {
		t.Errorf("TierUsed = %v, want rule", res.TierUsed)
	}
}

func TestRuleTierNeutralWhenTied(t *testing.T) {
	a := newTestAnalyzer(nil)

	res := a.Analyze("the juicy burger was bland")

	if res.Overall != PolarityNeutral {
		t.Errorf("Overall = %q, want neutral", res.Overall)
	}
	if math.Abs(res.Confidence-0.3) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.3", res.Confidence)
	}
	if !res.MixedSignals {
		t.Error("MixedSignals = false, want true for pos+neg words")
	}
}

func TestRuleTierIntensityBoosts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"plain", "something to eat", 0.5},
		{"exclamation", "pizza please!", 0.7},
		{"triple exclamation", "pizza please!!!", 1.0},
		{"caps word", "I want PIZZA", 0.7},
		{"caps and bang", "PIZZA now!", 0.9},
	}

	a := newTestAnalyzer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := a.Analyze(tt.text)
			if math.Abs(res.EmotionIntensity-tt.want) > 1e-9 {
				t.Errorf("EmotionIntensity = %v, want %v", res.EmotionIntensity, tt.want)
			}
		})
	}
}

func TestAdvancedTierThresholds(t *testing.T) {
	tests := []struct {
		name     string
		compound float64
		want     Polarity
	}{
		{"clearly positive", 0.6, PolarityPositive},
		{"boundary positive", 0.05, PolarityPositive},
		{"neutral band", 0.04, PolarityNeutral},
		{"boundary negative", -0.05, PolarityNegative},
		{"clearly negative", -0.7, PolarityNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAnalyzer(&stubScorer{compound: tt.compound})
			res := a.Analyze("does not matter")

			if res.Overall != tt.want {
				t.Errorf("Overall = %q, want %q", res.Overall, tt.want)
			}
			wantConf := math.Abs(tt.compound)
			if math.Abs(res.Confidence-wantConf) > 1e-9 {
				t.Errorf("Confidence = %v, want %v", res.Confidence, wantConf)
			}
			if res.TierUsed != TierAdvanced {
				t.Errorf("TierUsed = %v, want advanced", res.TierUsed)
			}
		})
	}
}

func TestAdvancedTierMergesRuleSignals(t *testing.T) {
	a := newTestAnalyzer(&stubScorer{compound: 0.9})

	res := a.Analyze("I'm so excited, need this asap, the creamy pasta is divine")

	if res.UrgencyLevel != UrgencyHigh {
		t.Errorf("UrgencyLevel = %q, want high", res.UrgencyLevel)
	}
	if res.FoodPolarity != PolarityPositive {
		t.Errorf("FoodPolarity = %q, want positive", res.FoodPolarity)
	}
	if res.Emotions["excitement"] <= 0 {
		t.Error("excitement emotion not detected in advanced tier")
	}
}

func TestScorerErrorFallsBackToRuleTier(t *testing.T) {
	a := newTestAnalyzer(&stubScorer{err: errors.New("lexicon unavailable")})

	res := a.Analyze("delicious, tasty and fresh")

	if res.TierUsed != TierRule {
		t.Errorf("TierUsed = %v, want rule", res.TierUsed)
	}
	if res.Overall != PolarityPositive {
		t.Errorf("Overall = %q, want positive", res.Overall)
	}
	// Shape must be identical: all fields populated.
	if res.Emotions == nil || res.UrgencyLevel == "" || res.FoodPolarity == "" {
		t.Error("degraded result has unpopulated fields")
	}
}

func TestPanicYieldsFallbackResult(t *testing.T) {
	a := newTestAnalyzer(panicScorer{})

	res := a.Analyze("I love this")

	if res.TierUsed != TierFallback {
		t.Errorf("TierUsed = %v, want fallback", res.TierUsed)
	}
	if res.Overall != PolarityPositive {
		t.Errorf("Overall = %q, want positive", res.Overall)
	}
	if res.Confidence != 0.5 || res.EmotionIntensity != 0.5 {
		t.Errorf("fallback confidence/intensity = %v/%v, want 0.5/0.5",
			res.Confidence, res.EmotionIntensity)
	}
	if res.Emotions["general"] != 0.5 {
		t.Errorf("fallback emotions = %v, want single general=0.5", res.Emotions)
	}
	if res.UrgencyLevel != UrgencyMedium {
		t.Errorf("fallback urgency = %q, want medium", res.UrgencyLevel)
	}
}

func TestDetectEmotionsWeights(t *testing.T) {
	// "excited" (len>3, 0.3) plus "!" (0.2) and "!!" (0.2): capped sum.
	emotions := detectEmotions("so excited!!")

	if emotions["excitement"] < 0.7-1e-9 {
		t.Errorf("excitement = %v, want >= 0.7", emotions["excitement"])
	}
	for emotion, score := range emotions {
		if score < 0 || score > 1 {
			t.Errorf("emotion %q score %v out of [0,1]", emotion, score)
		}
	}
}

func TestDetectUrgency(t *testing.T) {
	tests := []struct {
		text string
		want Urgency
	}{
		{"need it right now", UrgencyHigh},
		{"I'm starving", UrgencyHigh},
		{"sometime soon please", UrgencyMedium},
		{"whenever works", UrgencyLow},
		{"give me food!", UrgencyMedium}, // punctuation implies medium
		{"just browsing", UrgencyLow},
	}

	for _, tt := range tests {
		if got := detectUrgency(tt.text); got != tt.want {
			t.Errorf("detectUrgency(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDetectSarcasm(t *testing.T) {
	if !detectSarcasm("oh great, another salad") {
		t.Error("sarcasm phrase not detected")
	}
	if detectSarcasm("this is great") {
		t.Error("false sarcasm positive")
	}
}
