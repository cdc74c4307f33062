// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/models"
)

// SQLiteStore implements ProductStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-backed product store, creating the schema if
// needed.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	// WAL mode for better read concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL,
		ingredients TEXT NOT NULL,
		price REAL NOT NULL,
		calories INTEGER NOT NULL DEFAULT 0,
		prep_time TEXT NOT NULL DEFAULT '',
		dietary_tags TEXT NOT NULL,
		mood_tags TEXT NOT NULL,
		allergens TEXT NOT NULL,
		popularity_score REAL DEFAULT 50,
		chef_special INTEGER DEFAULT 0,
		limited_time INTEGER DEFAULT 0,
		spice_level INTEGER DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_product_category ON products(category);
	CREATE INDEX IF NOT EXISTS idx_product_price ON products(price);

	CREATE TABLE IF NOT EXISTS conversations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		user_message TEXT NOT NULL,
		bot_response TEXT NOT NULL,
		interest_score REAL DEFAULT 0.0,
		recommended_products TEXT,
		user_preferences TEXT,
		timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_conversation_session ON conversations(session_id);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// QueryProducts builds a conjunctive WHERE clause from the query and scans
// the matching rows. JSON-encoded list columns are decoded per row.
func (s *SQLiteStore) QueryProducts(ctx context.Context, q Query) ([]models.Product, error) {
	var (
		sb     strings.Builder
		args   []any
		clause []string
	)
	sb.WriteString(`SELECT product_id, name, category, description, ingredients,
		price, calories, prep_time, dietary_tags, mood_tags, allergens,
		popularity_score, spice_level, chef_special, limited_time FROM products`)

	if len(q.Categories) > 0 {
		ors := make([]string, len(q.Categories))
		for i, c := range q.Categories {
			ors[i] = "category = ?"
			args = append(args, c)
		}
		clause = append(clause, "("+strings.Join(ors, " OR ")+")")
	}
	for _, term := range q.TagTermsAll {
		clause = append(clause, "(mood_tags LIKE ? OR dietary_tags LIKE ?)")
		like := "%" + term + "%"
		args = append(args, like, like)
	}
	if len(q.MoodTagsAny) > 0 {
		ors := make([]string, len(q.MoodTagsAny))
		for i, m := range q.MoodTagsAny {
			ors[i] = "mood_tags LIKE ?"
			args = append(args, "%"+m+"%")
		}
		clause = append(clause, "("+strings.Join(ors, " OR ")+")")
	}
	if q.DietaryTag != "" {
		clause = append(clause, "dietary_tags LIKE ?")
		args = append(args, "%"+q.DietaryTag+"%")
	}
	if q.Search != "" {
		clause = append(clause, "(name LIKE ? OR description LIKE ?)")
		like := "%" + q.Search + "%"
		args = append(args, like, like)
	}
	if q.MaxPrice > 0 {
		clause = append(clause, "price <= ?")
		args = append(args, q.MaxPrice)
	}

	if len(clause) > 0 {
		sb.WriteString(" WHERE " + strings.Join(clause, " AND "))
	}

	if q.OrderByValue {
		sb.WriteString(" ORDER BY (popularity_score / MAX(price, 1)) DESC, popularity_score DESC, product_id ASC")
	} else {
		sb.WriteString(" ORDER BY popularity_score DESC, product_id ASC")
	}

	if q.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func scanProduct(rows *sql.Rows) (models.Product, error) {
	var p models.Product
	var ingredients, dietary, moods, algs string
	var chefSpecial, limitedTime int
	if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Description, &ingredients,
		&p.Price, &p.Calories, &p.PrepTime, &dietary, &moods, &algs,
		&p.PopularityScore, &p.SpiceLevel, &chefSpecial, &limitedTime); err != nil {
		return models.Product{}, fmt.Errorf("scan product: %w", err)
	}
	p.Ingredients = decodeList(ingredients)
	p.DietaryTags = decodeList(dietary)
	p.MoodTags = decodeList(moods)
	p.Allergens = decodeList(algs)
	p.ChefSpecial = chefSpecial != 0
	p.LimitedTime = limitedTime != 0
	return p, nil
}

// decodeList decodes a JSON-encoded string list. Malformed values decode to
// an empty list rather than failing the whole row.
func decodeList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []string{}
	}
	return out
}

// Categories returns the distinct product categories sorted ascending.
func (s *SQLiteStore) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT category FROM products ORDER BY category")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// RecordConversation persists one chat turn.
func (s *SQLiteStore) RecordConversation(ctx context.Context, turn *models.ConversationTurn) error {
	recommended, err := json.Marshal(turn.RecommendedProducts)
	if err != nil {
		return fmt.Errorf("encode recommended products: %w", err)
	}
	prefs, err := json.Marshal(turn.Preferences)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	ts := turn.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO conversations
		(session_id, user_message, bot_response, interest_score, recommended_products, user_preferences, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		turn.SessionID, turn.UserMessage, turn.BotResponse, turn.InterestScore,
		string(recommended), string(prefs), ts)
	if err != nil {
		return fmt.Errorf("insert conversation: %w", err)
	}
	return nil
}

// UpsertProduct inserts or replaces a product row. Used by seeding and tests.
func (s *SQLiteStore) UpsertProduct(ctx context.Context, p *models.Product) error {
	ingredients, _ := json.Marshal(p.Ingredients)
	dietary, _ := json.Marshal(p.DietaryTags)
	moods, _ := json.Marshal(p.MoodTags)
	allergens, _ := json.Marshal(p.Allergens)

	_, err := s.db.ExecContext(ctx, `INSERT INTO products
		(product_id, name, category, description, ingredients, price, calories,
		 prep_time, dietary_tags, mood_tags, allergens, popularity_score,
		 spice_level, chef_special, limited_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(product_id) DO UPDATE SET
		 name = excluded.name, category = excluded.category,
		 description = excluded.description, ingredients = excluded.ingredients,
		 price = excluded.price, calories = excluded.calories,
		 prep_time = excluded.prep_time, dietary_tags = excluded.dietary_tags,
		 mood_tags = excluded.mood_tags, allergens = excluded.allergens,
		 popularity_score = excluded.popularity_score,
		 spice_level = excluded.spice_level, chef_special = excluded.chef_special,
		 limited_time = excluded.limited_time`,
		p.ID, p.Name, p.Category, p.Description, string(ingredients), p.Price,
		p.Calories, p.PrepTime, string(dietary), string(moods), string(allergens),
		p.PopularityScore, p.SpiceLevel, boolToInt(p.ChefSpecial), boolToInt(p.LimitedTime))
	if err != nil {
		return fmt.Errorf("upsert product %s: %w", p.ID, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
