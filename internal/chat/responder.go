// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

// Package chat composes the bot's reply from the conversation and the top
// recommendation. Replies are template-based and deterministic; no
// external language model is involved.
package chat

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/models"
)

var greetingWords = []string{"hi", "hello", "hey", "yo", "howdy"}

// Responder builds user-facing replies.
type Responder struct{}

// NewResponder creates a reply composer.
func NewResponder() *Responder {
	return &Responder{}
}

// Reply composes the bot's answer from the message and the recommended
// products, using the top product when any are available.
func (r *Responder) Reply(message string, products []models.Product) string {
	lower := strings.ToLower(message)

	if isGreeting(lower) {
		return "Hi! I'm FoodieBot, ready to help you find delicious food. What are you in the mood for today?"
	}

	if len(products) == 0 {
		return noProductReply(lower)
	}

	p := &products[0]
	switch {
	case strings.Contains(lower, "spicy"):
		return fmt.Sprintf(
			"Perfect! I found the %s with %d/10 spice level for $%.2f. It's exactly the heat you're looking for! Want to try it?",
			p.Name, p.SpiceLevel, p.Price)
	case strings.Contains(lower, "sweet"):
		return fmt.Sprintf(
			"Great choice! The %s is our most popular dessert at $%.2f. %s Perfect for satisfying that sweet tooth!",
			p.Name, p.Price, truncate(p.Description, 60))
	case strings.Contains(lower, "pizza"):
		return fmt.Sprintf(
			"Excellent! Our %s is $%.2f and absolutely delicious. %s Does this sound perfect?",
			p.Name, p.Price, truncate(p.Description, 70))
	default:
		return fmt.Sprintf(
			"I recommend the %s for $%.2f! %s It's really popular with our customers. Interested?",
			p.Name, p.Price, truncate(p.Description, 60))
	}
}

// noProductReply keeps the conversation moving when nothing matched.
func noProductReply(lower string) string {
	switch {
	case strings.Contains(lower, "spicy"):
		return "I love spicy food too! Let me find you some fiery options. What type of spicy food do you prefer - Asian heat, Mexican spice, or Indian fire?"
	case strings.Contains(lower, "sweet"):
		return "Sweet treats are the best! Are you thinking chocolate desserts, fruity options, or maybe something with caramel? I have amazing recommendations!"
	default:
		return "I'd love to help you find something delicious! What type of food are you in the mood for? Pizza, burgers, something healthy, or maybe a sweet treat?"
	}
}

// isGreeting matches greeting words on word boundaries, so "this" never
// reads as "hi".
func isGreeting(lower string) bool {
	for _, word := range strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == ',' || r == '!' || r == '.' || r == '?'
	}) {
		for _, greeting := range greetingWords {
			if word == greeting {
				return true
			}
		}
	}
	return false
}

// truncate shortens a description to at most n runes, adding an ellipsis
// when it was cut. Counting runes keeps the cut from splitting a multibyte
// character.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
