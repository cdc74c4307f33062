// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package recommend

import (
	"sort"
	"sync"
	"time"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/models"
)

// interactionCap bounds per-session interaction history; when exceeded,
// the oldest entries are dropped.
const interactionCap = 50

// Interaction records one product surfaced to (or rated by) a session.
type Interaction struct {
	ProductID string             `json:"product_id"`
	Category  string             `json:"category"`
	Score     float64            `json:"recommendation_score"`
	Liked     bool               `json:"liked"`
	Prefs     models.Preferences `json:"preferences_when_recommended"`
	Timestamp time.Time          `json:"timestamp"`
}

// profile is one session's interaction history with its own lock.
type profile struct {
	mu      sync.Mutex
	history []Interaction
}

// profileStore holds per-session profiles. The outer lock guards the map
// only; history access locks the profile.
type profileStore struct {
	mu       sync.RWMutex
	profiles map[string]*profile
}

func newProfileStore() *profileStore {
	return &profileStore{profiles: make(map[string]*profile)}
}

// get returns the session's profile, creating it if absent.
func (s *profileStore) get(sessionID string) *profile {
	s.mu.RLock()
	p, ok := s.profiles[sessionID]
	s.mu.RUnlock()
	if ok {
		return p
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok = s.profiles[sessionID]; ok {
		return p
	}
	p = &profile{}
	s.profiles[sessionID] = p
	return p
}

// record appends interactions to the session's history, enforcing the cap.
func (s *profileStore) record(sessionID string, interactions []Interaction) {
	if len(interactions) == 0 {
		return
	}
	p := s.get(sessionID)
	p.mu.Lock()
	defer p.mu.Unlock()

	p.history = append(p.history, interactions...)
	if n := len(p.history); n > interactionCap {
		p.history = append(p.history[:0:0], p.history[n-interactionCap:]...)
	}
}

// LikedCategories implements HistoryProvider: the distinct categories of
// liked interactions, sorted for deterministic query building.
func (s *profileStore) LikedCategories(sessionID string) []string {
	return s.distinctCategories(sessionID, true)
}

// SeenCategories implements HistoryProvider: the distinct categories of
// every recorded interaction, liked or not.
func (s *profileStore) SeenCategories(sessionID string) []string {
	return s.distinctCategories(sessionID, false)
}

func (s *profileStore) distinctCategories(sessionID string, likedOnly bool) []string {
	s.mu.RLock()
	p, ok := s.profiles[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	seen := make(map[string]struct{})
	var categories []string
	for _, it := range p.history {
		if (likedOnly && !it.Liked) || it.Category == "" {
			continue
		}
		if _, dup := seen[it.Category]; dup {
			continue
		}
		seen[it.Category] = struct{}{}
		categories = append(categories, it.Category)
	}
	sort.Strings(categories)
	return categories
}

// history returns a copy of the session's interaction history.
func (s *profileStore) historyFor(sessionID string) []Interaction {
	s.mu.RLock()
	p, ok := s.profiles[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Interaction(nil), p.history...)
}

// CategoryCount pairs a category with how often it was recommended.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Analytics summarizes recommendation activity across all sessions.
type Analytics struct {
	TotalSessions    int             `json:"total_sessions_with_recommendations"`
	TotalRecommended int             `json:"total_recommendations_made"`
	AvgPerSession    float64         `json:"avg_recommendations_per_session"`
	TopCategories    []CategoryCount `json:"top_recommended_categories"`
}

// analytics aggregates counts over every profile.
func (s *profileStore) analytics() Analytics {
	s.mu.RLock()
	profiles := make([]*profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		profiles = append(profiles, p)
	}
	s.mu.RUnlock()

	total := 0
	counts := make(map[string]int)
	for _, p := range profiles {
		p.mu.Lock()
		total += len(p.history)
		for _, it := range p.history {
			category := it.Category
			if category == "" {
				category = "Unknown"
			}
			counts[category]++
		}
		p.mu.Unlock()
	}

	top := make([]CategoryCount, 0, len(counts))
	for category, n := range counts {
		top = append(top, CategoryCount{Category: category, Count: n})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Category < top[j].Category
	})
	if len(top) > 5 {
		top = top[:5]
	}

	sessions := len(profiles)
	avg := 0.0
	if sessions > 0 {
		avg = float64(total) / float64(sessions)
	}

	return Analytics{
		TotalSessions:    sessions,
		TotalRecommended: total,
		AvgPerSession:    avg,
		TopCategories:    top,
	}
}
