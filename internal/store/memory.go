// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/models"
)

// MemoryStore implements ProductStore with an in-process catalog. It applies
// the same filter and ordering semantics as the SQLite store and is the
// implementation tests run against.
type MemoryStore struct {
	mu            sync.RWMutex
	products      []models.Product
	conversations []models.ConversationTurn
}

// NewMemory creates an in-memory product store seeded with the given catalog.
func NewMemory(products []models.Product) *MemoryStore {
	cp := make([]models.Product, len(products))
	copy(cp, products)
	return &MemoryStore{products: cp}
}

// QueryProducts filters and orders the catalog per the query.
func (m *MemoryStore) QueryProducts(ctx context.Context, q Query) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Product
	for i := range m.products {
		if matchesQuery(&m.products[i], &q) {
			out = append(out, m.products[i])
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if q.OrderByValue {
			vi := valueScore(&out[i])
			vj := valueScore(&out[j])
			if vi != vj {
				return vi > vj
			}
		}
		if out[i].PopularityScore != out[j].PopularityScore {
			return out[i].PopularityScore > out[j].PopularityScore
		}
		return out[i].ID < out[j].ID
	})

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func valueScore(p *models.Product) float64 {
	price := p.Price
	if price < 1 {
		price = 1
	}
	return p.PopularityScore / price
}

func matchesQuery(p *models.Product, q *Query) bool {
	if len(q.Categories) > 0 && !containsString(q.Categories, p.Category) {
		return false
	}
	for _, term := range q.TagTermsAll {
		if !p.HasMoodTag(term) && !p.HasDietaryTag(term) {
			return false
		}
	}
	if len(q.MoodTagsAny) > 0 {
		any := false
		for _, m := range q.MoodTagsAny {
			if p.HasMoodTag(m) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	if q.DietaryTag != "" && !p.HasDietaryTag(q.DietaryTag) {
		return false
	}
	if q.Search != "" {
		s := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.Name), s) &&
			!strings.Contains(strings.ToLower(p.Description), s) {
			return false
		}
	}
	if q.MaxPrice > 0 && p.Price > q.MaxPrice {
		return false
	}
	return true
}

func containsString(hay []string, want string) bool {
	for _, h := range hay {
		if h == want {
			return true
		}
	}
	return false
}

// Categories returns the distinct categories sorted ascending.
func (m *MemoryStore) Categories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for i := range m.products {
		c := m.products[i].Category
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out, nil
}

// RecordConversation appends one chat turn.
func (m *MemoryStore) RecordConversation(ctx context.Context, turn *models.ConversationTurn) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversations = append(m.conversations, *turn)
	return nil
}

// Conversations returns a copy of the recorded turns. Test helper.
func (m *MemoryStore) Conversations() []models.ConversationTurn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cp := make([]models.ConversationTurn, len(m.conversations))
	copy(cp, m.conversations)
	return cp
}

// Ping always succeeds for the in-memory store.
func (m *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
