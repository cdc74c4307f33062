// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

package prefs

import (
	"reflect"
	"testing"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/models"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    models.Preferences
	}{
		{
			name:    "empty message",
			message: "",
			want:    models.Preferences{},
		},
		{
			name:    "no signals",
			message: "hello there",
			want:    models.Preferences{},
		},
		{
			name:    "pizza category",
			message: "I could really go for some PIZZA",
			want:    models.Preferences{Categories: []string{"Pizza"}},
		},
		{
			name:    "first category rule wins",
			message: "pizza or maybe a burger",
			want:    models.Preferences{Categories: []string{"Pizza"}},
		},
		{
			name:    "sweet maps to desserts and mood",
			message: "something sweet please",
			want: models.Preferences{
				Categories: []string{"Desserts"},
				Moods:      []string{"sweet"},
			},
		},
		{
			name:    "vegetarian beats vegan",
			message: "I'm vegetarian",
			want:    models.Preferences{Dietary: []string{"vegetarian"}},
		},
		{
			name:    "vegan alone",
			message: "got any vegan options?",
			want:    models.Preferences{Dietary: []string{"vegan"}},
		},
		{
			name:    "hot maps to spicy mood",
			message: "give me something hot",
			want:    models.Preferences{Moods: []string{"spicy"}},
		},
		{
			name:    "budget with dollar sign",
			message: "burgers under $15 please",
			want: models.Preferences{
				Categories: []string{"Burgers"},
				MaxBudget:  15,
			},
		},
		{
			name:    "budget without dollar sign",
			message: "anything under 12.50",
			want:    models.Preferences{MaxBudget: 12.5},
		},
		{
			name:    "combined example",
			message: "I'm vegetarian and love spicy food, under $15",
			want: models.Preferences{
				Dietary:   []string{"vegetarian"},
				Moods:     []string{"spicy"},
				MaxBudget: 15,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.message)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %+v, want %+v", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractEmptyHasNoPreference(t *testing.T) {
	got := Extract("what do you recommend?")
	if !got.IsEmpty() {
		t.Errorf("Extract with no signals: IsEmpty() = false, got %+v", got)
	}
}
