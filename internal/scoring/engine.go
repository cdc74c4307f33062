// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

// Package scoring maintains a per-session interest score in [0, 100]
// estimating purchase readiness from conversational signals.
//
// Each scored message applies a fixed factor table, an optional sentiment
// adjustment, and a short-term trend adjustment, then clamps and stores the
// result. Score never fails: total internal failure yields a safe default
// without mutating stored state.
package scoring

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/sentiment"
)

// safeDefaultScore is returned when scoring fails entirely.
const safeDefaultScore = 40.0

// Outcome reports which path produced a score, so callers and tests can
// assert degradation instead of inferring it from the value.
type Outcome int

const (
	// OutcomeOK means the full pipeline ran, sentiment included.
	OutcomeOK Outcome = iota
	// OutcomeDegraded means scoring ran without sentiment enhancement.
	OutcomeDegraded
	// OutcomeFallback means scoring failed and the safe default was used.
	OutcomeFallback
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeDegraded:
		return "degraded"
	case OutcomeFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Analysis is the per-session analytics snapshot.
type Analysis struct {
	CurrentScore       float64 `json:"current_score"`
	ConversationLength int     `json:"conversation_length"`
	EngagementLevel    string  `json:"engagement_level"`
	ScoreTrend         string  `json:"score_trend"`
}

// SentimentAnalyzer is the capability object for sentiment enhancement,
// injected at construction. Absent (nil), scores are computed from the
// factor table and trend alone.
type SentimentAnalyzer interface {
	// Analyze classifies one message into a sentiment profile.
	Analyze(text string) sentiment.Result
}

// Engine computes and stores interest scores. Safe for concurrent use;
// calls for the same session serialize on that session's lock.
type Engine struct {
	analyzer SentimentAnalyzer // nil disables sentiment enhancement
	sessions *sessionStore
	logger   zerolog.Logger
	now      func() time.Time
}

// NewEngine creates a scoring engine. analyzer may be nil, in which case
// scores are computed from the factor table and trend alone.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(analyzer SentimentAnalyzer, logger zerolog.Logger) *Engine {
	return &Engine{
		analyzer: analyzer,
		sessions: newSessionStore(),
		logger:   logger.With().Str("component", "scoring").Logger(),
		now:      time.Now,
	}
}

// Score computes the interest score for one message and updates the
// session's state. The result is always within [0, 100], rounded to one
// decimal.
func (e *Engine) Score(sessionID, message string) float64 {
	score, _ := e.ScoreDetail(sessionID, message)
	return score
}

// ScoreDetail is Score plus the outcome marker.
func (e *Engine) ScoreDetail(sessionID, message string) (score float64, outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().
				Str("session_id", sessionID).
				Interface("panic", r).
				Msg("interest scoring failed, returning safe default")
			score, outcome = safeDefaultScore, OutcomeFallback
		}
	}()

	st := e.sessions.get(sessionID)
	st.mu.Lock()
	defer st.mu.Unlock()

	current := st.score
	deltas, rawDelta := evaluateFactors(message)
	newScore := current + rawDelta

	outcome = OutcomeDegraded
	if e.analyzer != nil {
		newScore = e.applySentiment(newScore, message)
		outcome = OutcomeOK
	}

	newScore = applyTrend(newScore, st.recentScores(3))

	final := clamp(newScore, 0, 100)
	final = round1(final)

	// All computation succeeded; commit state in one step.
	st.score = final
	st.appendHistory(HistoryEntry{
		Message:   message,
		Score:     final,
		Deltas:    deltas,
		Timestamp: e.now(),
	})

	e.logger.Debug().
		Str("session_id", sessionID).
		Float64("raw_delta", rawDelta).
		Float64("score", final).
		Msg("scored message")

	return final, outcome
}

// applySentiment adjusts the score from the analyzer's profile. Best effort:
// the analyzer itself never fails, so every adjustment applies.
func (e *Engine) applySentiment(score float64, message string) float64 {
	res := e.analyzer.Analyze(message)

	switch res.Overall {
	case sentiment.PolarityPositive:
		score *= 1.15
	case sentiment.PolarityNegative:
		score *= 0.85
	}

	if res.Confidence > 0.7 {
		score += 5
	}
	score += res.EmotionIntensity * 10

	if res.Emotions["excitement"] > 0.5 {
		score += 8
	}
	if res.Emotions["enthusiasm"] > 0.5 {
		score += 6
	}
	if res.Emotions["frustration"] > 0.5 {
		score -= 10
	}

	switch res.UrgencyLevel {
	case sentiment.UrgencyHigh:
		score += 10
	case sentiment.UrgencyMedium:
		score += 4
	}

	switch res.FoodPolarity {
	case sentiment.PolarityPositive:
		score += 5
	case sentiment.PolarityNegative:
		score -= 8
	}

	return score
}

// applyTrend applies the short-term trend adjustment from the most recent
// stored scores: +3 when strictly increasing, -2 when strictly decreasing.
// Needs at least two prior entries, otherwise no change.
func applyTrend(score float64, recent []float64) float64 {
	if len(recent) < 2 {
		return score
	}
	last, prev := recent[len(recent)-1], recent[len(recent)-2]
	switch {
	case last > prev:
		return score + 3
	case last < prev:
		return score - 2
	default:
		return score
	}
}

// Analyze returns the analytics snapshot for a session. Unknown sessions
// report a zero score and empty history.
func (e *Engine) Analyze(sessionID string) Analysis {
	st, ok := e.sessions.peek(sessionID)
	if !ok {
		return Analysis{
			EngagementLevel: engagementLevel(0),
			ScoreTrend:      "stable",
		}
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	analysis := Analysis{
		CurrentScore:       st.score,
		ConversationLength: len(st.history),
		EngagementLevel:    engagementLevel(st.score),
		ScoreTrend:         "stable",
	}

	if len(st.history) >= 2 {
		recent := st.recentScores(3)
		switch {
		case recent[len(recent)-1] > recent[0]:
			analysis.ScoreTrend = "improving"
		case recent[len(recent)-1] < recent[0]:
			analysis.ScoreTrend = "declining"
		}
	}

	return analysis
}

// History returns a copy of the session's rolling history.
func (e *Engine) History(sessionID string) []HistoryEntry {
	st, ok := e.sessions.peek(sessionID)
	if !ok {
		return nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]HistoryEntry, len(st.history))
	copy(out, st.history)
	return out
}

// engagementLevel maps a score to its qualitative tier.
func engagementLevel(score float64) string {
	switch {
	case score >= 80:
		return "Very High - Ready to Order"
	case score >= 60:
		return "High - Strong Interest"
	case score >= 40:
		return "Medium - Considering Options"
	case score >= 20:
		return "Low - Browsing"
	default:
		return "Very Low - Disengaged"
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
