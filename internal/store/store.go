// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

// Package store provides the product catalog and conversation persistence
// interfaces plus their SQLite and in-memory implementations.
//
// The recommendation core depends only on the ProductStore interface, which
// keeps the store swappable and the generators testable without a database.
package store

import (
	"context"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/models"
)

// Query describes a conjunctive product filter. Zero-valued fields are
// ignored. All tag matches are case-insensitive substring matches, mirroring
// the SQL LIKE shape the generators were designed against.
type Query struct {
	// Categories matches products whose category equals any listed value.
	Categories []string

	// TagTermsAll requires every term to match the product's mood tags or
	// dietary tags (either field satisfies a term).
	TagTermsAll []string

	// MoodTagsAny requires at least one term to match the mood tags.
	MoodTagsAny []string

	// DietaryTag requires the term to match the dietary tags.
	DietaryTag string

	// Search matches name or description by substring.
	Search string

	// MaxPrice, when positive, excludes products priced strictly above it.
	MaxPrice float64

	// OrderByValue orders by popularity-per-price descending instead of
	// the default popularity descending. Ties fall back to popularity,
	// then product ID for determinism.
	OrderByValue bool

	// Limit caps the number of rows returned; non-positive means no cap.
	Limit int
}

// ProductStore is the narrow read/write interface the core calls.
// Implementations must be safe for concurrent use.
type ProductStore interface {
	// QueryProducts returns products matching the filter, ordered per the
	// query. It is read-only and side-effect free.
	QueryProducts(ctx context.Context, q Query) ([]models.Product, error)

	// Categories returns the distinct categories present in the catalog,
	// sorted ascending.
	Categories(ctx context.Context) ([]string, error)

	// RecordConversation persists one chat turn.
	RecordConversation(ctx context.Context, turn *models.ConversationTurn) error

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases store resources.
	Close() error
}
