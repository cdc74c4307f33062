// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

// Package recommend implements the hybrid recommendation engine.
//
// Candidate products come from independent generators (see the generators
// subpackage), each scoring products on its own scale. The engine fuses
// the candidate lists with per-generator weights selected by the session's
// interest tier, then deduplicates and ranks the result.
//
// # Generator Categories
//
//   - Preference matching: conversation keywords against product tags
//   - Mood-based filtering: customer mood against mood tags
//   - Budget optimization: best value within the stated price ceiling
//   - Dietary intelligence: strict restriction and allergen filtering
//   - Collaborative: categories from the session's interaction history
//
// # Thread Safety
//
// The engine is safe for concurrent use. Generator registration must
// finish before the first Recommend call; interaction history uses
// per-session locking.
package recommend
