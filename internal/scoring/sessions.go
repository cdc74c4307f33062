// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package scoring

import (
	"sync"
	"time"
)

// baselineScore is the starting score for a new session.
const baselineScore = 30.0

// historyCap bounds the per-session rolling history.
const historyCap = 10

// HistoryEntry is one scored message in a session's rolling history.
type HistoryEntry struct {
	Message   string             `json:"message"`
	Score     float64            `json:"score"`
	Deltas    map[string]float64 `json:"score_changes"`
	Timestamp time.Time          `json:"timestamp"`
}

// sessionState holds one session's score and history. The embedded mutex
// serializes the read-modify-write sequence for a single session key;
// different sessions proceed in parallel.
type sessionState struct {
	mu      sync.Mutex
	score   float64
	history []HistoryEntry
}

// sessionStore owns the session-id to state mapping. It replaces the
// original's module-level maps with an explicit, lock-guarded store.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionState
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*sessionState)}
}

// get returns the state for a session, creating it at the baseline score on
// first use. The returned state's own mutex guards its fields.
func (s *sessionStore) get(sessionID string) *sessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[sessionID]
	if !ok {
		st = &sessionState{score: baselineScore}
		s.sessions[sessionID] = st
	}
	return st
}

// peek returns the state for a session without creating it.
func (s *sessionStore) peek(sessionID string) (*sessionState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[sessionID]
	return st, ok
}

// appendHistory records one entry, truncating to the newest historyCap.
// Caller must hold st.mu.
func (st *sessionState) appendHistory(entry HistoryEntry) {
	st.history = append(st.history, entry)
	if len(st.history) > historyCap {
		st.history = st.history[len(st.history)-historyCap:]
	}
}

// recentScores returns the scores of up to the last n history entries.
// Caller must hold st.mu.
func (st *sessionState) recentScores(n int) []float64 {
	start := len(st.history) - n
	if start < 0 {
		start = 0
	}
	scores := make([]float64, 0, n)
	for _, h := range st.history[start:] {
		scores = append(scores, h.Score)
	}
	return scores
}
