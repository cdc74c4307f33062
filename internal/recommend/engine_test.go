// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package recommend

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/models"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/store"
)

// stubGenerator returns fixed candidates or a fixed error.
type stubGenerator struct {
	name       string
	candidates []Candidate
	err        error
}

func (s *stubGenerator) Name() string { return s.name }

func (s *stubGenerator) Generate(_ context.Context, _ Request) ([]Candidate, error) {
	return s.candidates, s.err
}

// panicGenerator always panics during generation.
type panicGenerator struct{}

func (panicGenerator) Name() string { return "panicky" }

func (panicGenerator) Generate(_ context.Context, _ Request) ([]Candidate, error) {
	panic("boom")
}

func product(id, category string, popularity float64) models.Product {
	return models.Product{
		ID:              id,
		Name:            "Product " + id,
		Category:        category,
		PopularityScore: popularity,
	}
}

func newTestEngine(generators ...Generator) *Engine {
	e := NewEngine(store.NewMemory(store.SeedProducts()), nil, zerolog.Nop())
	for _, g := range generators {
		e.RegisterGenerator(g)
	}
	return e
}

func TestThresholdStrategy(t *testing.T) {
	s := DefaultThresholds()

	tests := []struct {
		score float64
		want  Tier
	}{
		{95, TierHot},
		{80, TierHot},
		{79.9, TierWarm},
		{60, TierWarm},
		{59.9, TierCurious},
		{40, TierCurious},
		{39.9, TierCold},
		{0, TierCold},
	}
	for _, tt := range tests {
		if got := s.Tier(tt.score); got != tt.want {
			t.Errorf("Tier(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRecommendAppliesTierWeights(t *testing.T) {
	// Hot tier: preference weight 1.2, budget weight 0.8. The lower raw
	// score wins after weighting.
	e := newTestEngine(
		&stubGenerator{name: GeneratorPreference, candidates: []Candidate{
			{Product: product("A", "Pizza", 80), Score: 50}, // 50*1.2 = 60
		}},
		&stubGenerator{name: GeneratorBudget, candidates: []Candidate{
			{Product: product("B", "Burgers", 90), Score: 70}, // 70*0.8 = 56
		}},
	)

	resp := e.Recommend(context.Background(), Request{SessionID: "s", InterestScore: 85})

	if resp.Tier != TierHot {
		t.Fatalf("Tier = %q, want hot", resp.Tier)
	}
	if resp.Outcome != OutcomeOK {
		t.Fatalf("Outcome = %v, want ok", resp.Outcome)
	}
	if len(resp.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(resp.Recommendations))
	}
	if resp.Recommendations[0].ID != "A" || resp.Recommendations[0].Score != 60.0 {
		t.Errorf("first = %s score %v, want A score 60.0",
			resp.Recommendations[0].ID, resp.Recommendations[0].Score)
	}
	if resp.Recommendations[1].ID != "B" || resp.Recommendations[1].Score != 56.0 {
		t.Errorf("second = %s score %v, want B score 56.0",
			resp.Recommendations[1].ID, resp.Recommendations[1].Score)
	}
	if resp.Recommendations[0].Source != GeneratorPreference {
		t.Errorf("Source = %q, want %q", resp.Recommendations[0].Source, GeneratorPreference)
	}
}

func TestRecommendDeduplicatesKeepingHighest(t *testing.T) {
	// Same product from two generators; the higher weighted score wins
	// and carries its source.
	e := newTestEngine(
		&stubGenerator{name: GeneratorPreference, candidates: []Candidate{
			{Product: product("A", "Pizza", 80), Score: 40}, // 40*1.2 = 48
		}},
		&stubGenerator{name: GeneratorDietary, candidates: []Candidate{
			{Product: product("A", "Pizza", 80), Score: 95}, // 95*1.1 = 104.5
		}},
	)

	resp := e.Recommend(context.Background(), Request{SessionID: "s", InterestScore: 85})

	if len(resp.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1 after dedup", len(resp.Recommendations))
	}
	rec := resp.Recommendations[0]
	if rec.Score != 104.5 || rec.Source != GeneratorDietary {
		t.Errorf("kept score %v from %q, want 104.5 from %q", rec.Score, rec.Source, GeneratorDietary)
	}
}

func TestRecommendUnknownGeneratorWeight(t *testing.T) {
	e := newTestEngine(&stubGenerator{name: "experimental", candidates: []Candidate{
		{Product: product("A", "Pizza", 80), Score: 60},
	}})

	resp := e.Recommend(context.Background(), Request{SessionID: "s", InterestScore: 85})

	if len(resp.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(resp.Recommendations))
	}
	if got := resp.Recommendations[0].Score; got != 30.0 {
		t.Errorf("score = %v, want 30.0 (default weight 0.5)", got)
	}
}

func TestRecommendHonorsLimit(t *testing.T) {
	var candidates []Candidate
	for i := 0; i < 12; i++ {
		candidates = append(candidates, Candidate{
			Product: product(fmt.Sprintf("P%02d", i), "Pizza", 50),
			Score:   float64(100 - i),
		})
	}
	e := newTestEngine(&stubGenerator{name: GeneratorPreference, candidates: candidates})

	resp := e.Recommend(context.Background(), Request{SessionID: "s", Limit: 3})
	if len(resp.Recommendations) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(resp.Recommendations))
	}

	// Zero limit falls back to the default.
	resp = e.Recommend(context.Background(), Request{SessionID: "s"})
	if len(resp.Recommendations) != DefaultLimit {
		t.Errorf("got %d recommendations, want %d", len(resp.Recommendations), DefaultLimit)
	}
}

func TestRecommendDegradedWhenGeneratorFails(t *testing.T) {
	e := newTestEngine(
		&stubGenerator{name: GeneratorPreference, candidates: []Candidate{
			{Product: product("A", "Pizza", 80), Score: 50},
		}},
		&stubGenerator{name: GeneratorMood, err: errors.New("query timeout")},
	)

	resp := e.Recommend(context.Background(), Request{SessionID: "s", InterestScore: 50})

	if resp.Outcome != OutcomeDegraded {
		t.Fatalf("Outcome = %v, want degraded", resp.Outcome)
	}
	if len(resp.Recommendations) != 1 {
		t.Errorf("got %d recommendations, want 1 from the surviving generator", len(resp.Recommendations))
	}
	if _, ok := resp.GeneratorErrors[GeneratorMood]; !ok {
		t.Errorf("GeneratorErrors = %v, want entry for %q", resp.GeneratorErrors, GeneratorMood)
	}
}

func TestRecommendPanickingGeneratorIsIsolated(t *testing.T) {
	e := newTestEngine(
		panicGenerator{},
		&stubGenerator{name: GeneratorPreference, candidates: []Candidate{
			{Product: product("A", "Pizza", 80), Score: 50},
		}},
	)

	resp := e.Recommend(context.Background(), Request{SessionID: "s"})

	if resp.Outcome != OutcomeDegraded {
		t.Fatalf("Outcome = %v, want degraded", resp.Outcome)
	}
	if len(resp.Recommendations) != 1 {
		t.Errorf("got %d recommendations, want 1", len(resp.Recommendations))
	}
}

func TestRecommendFallbackWhenAllFail(t *testing.T) {
	e := newTestEngine(
		&stubGenerator{name: GeneratorPreference, err: errors.New("down")},
		&stubGenerator{name: GeneratorMood, err: errors.New("down")},
	)

	resp := e.Recommend(context.Background(), Request{SessionID: "s", Limit: 3})

	if resp.Outcome != OutcomeFallback {
		t.Fatalf("Outcome = %v, want fallback", resp.Outcome)
	}
	if len(resp.Recommendations) != 3 {
		t.Fatalf("got %d fallback recommendations, want 3", len(resp.Recommendations))
	}
	for _, rec := range resp.Recommendations {
		if rec.Source != "popularity_fallback" {
			t.Errorf("Source = %q, want popularity_fallback", rec.Source)
		}
	}
	// Popularity ordering: each at least as popular as the next.
	for i := 1; i < len(resp.Recommendations); i++ {
		if resp.Recommendations[i].PopularityScore > resp.Recommendations[i-1].PopularityScore {
			t.Errorf("fallback not popularity-ordered at %d", i)
		}
	}
}

// failingStore errors on every call.
type failingStore struct{}

func (failingStore) QueryProducts(context.Context, store.Query) ([]models.Product, error) {
	return nil, errors.New("store down")
}
func (failingStore) Categories(context.Context) ([]string, error) {
	return nil, errors.New("store down")
}
func (failingStore) RecordConversation(context.Context, *models.ConversationTurn) error {
	return errors.New("store down")
}
func (failingStore) Ping(context.Context) error { return errors.New("store down") }
func (failingStore) Close() error               { return nil }

func TestRecommendEmptyWhenFallbackFails(t *testing.T) {
	e := NewEngine(failingStore{}, nil, zerolog.Nop())
	e.RegisterGenerator(&stubGenerator{name: GeneratorPreference, err: errors.New("down")})

	resp := e.Recommend(context.Background(), Request{SessionID: "s"})

	if resp.Outcome != OutcomeFallback {
		t.Fatalf("Outcome = %v, want fallback", resp.Outcome)
	}
	if len(resp.Recommendations) != 0 {
		t.Errorf("got %d recommendations, want 0", len(resp.Recommendations))
	}
}

func TestInteractionHistoryCapped(t *testing.T) {
	e := newTestEngine(&stubGenerator{name: GeneratorPreference, candidates: []Candidate{
		{Product: product("A", "Pizza", 80), Score: 50},
		{Product: product("B", "Burgers", 70), Score: 40},
	}})

	for i := 0; i < 40; i++ {
		e.Recommend(context.Background(), Request{SessionID: "caps"})
	}

	history := e.History("caps")
	if len(history) != interactionCap {
		t.Errorf("history length = %d, want %d", len(history), interactionCap)
	}
}

func TestRecordFeedbackFeedsLikedCategories(t *testing.T) {
	e := newTestEngine()

	e.RecordFeedback("s", "FF001", "Pizza", true)
	e.RecordFeedback("s", "FF002", "Burgers", true)
	e.RecordFeedback("s", "FF003", "Desserts", false)
	e.RecordFeedback("s", "FF004", "Pizza", true) // duplicate category

	got := e.Profiles().LikedCategories("s")
	want := []string{"Burgers", "Pizza"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LikedCategories = %v, want %v", got, want)
	}

	if got := e.Profiles().LikedCategories("unknown"); got != nil {
		t.Errorf("LikedCategories(unknown) = %v, want nil", got)
	}
}

func TestSeenCategoriesIncludeUnratedInteractions(t *testing.T) {
	e := newTestEngine()

	e.RecordFeedback("s", "FF001", "Pizza", false)
	e.RecordFeedback("s", "FF002", "Burgers", false)
	e.RecordFeedback("s", "FF003", "Pizza", false)

	if got := e.Profiles().LikedCategories("s"); got != nil {
		t.Errorf("LikedCategories = %v, want nil without positive feedback", got)
	}

	got := e.Profiles().SeenCategories("s")
	want := []string{"Burgers", "Pizza"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SeenCategories = %v, want %v", got, want)
	}

	if got := e.Profiles().SeenCategories("unknown"); got != nil {
		t.Errorf("SeenCategories(unknown) = %v, want nil", got)
	}
}

func TestAnalyticsReport(t *testing.T) {
	e := newTestEngine(&stubGenerator{name: GeneratorPreference, candidates: []Candidate{
		{Product: product("A", "Pizza", 80), Score: 50},
		{Product: product("B", "Pizza", 70), Score: 45},
		{Product: product("C", "Burgers", 60), Score: 40},
	}})

	e.Recommend(context.Background(), Request{SessionID: "s1"})
	e.Recommend(context.Background(), Request{SessionID: "s2"})

	report := e.AnalyticsReport()
	if report.TotalSessions != 2 {
		t.Errorf("TotalSessions = %d, want 2", report.TotalSessions)
	}
	if report.TotalRecommended != 6 {
		t.Errorf("TotalRecommended = %d, want 6", report.TotalRecommended)
	}
	if report.AvgPerSession != 3.0 {
		t.Errorf("AvgPerSession = %v, want 3.0", report.AvgPerSession)
	}
	if len(report.TopCategories) == 0 || report.TopCategories[0].Category != "Pizza" {
		t.Errorf("TopCategories = %v, want Pizza first", report.TopCategories)
	}
	if report.TopCategories[0].Count != 4 {
		t.Errorf("Pizza count = %d, want 4", report.TopCategories[0].Count)
	}
}
