// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

// Package api provides the HTTP surface: Chi routing, request validation
// with go-playground/validator tags, and JSON handlers for the chat
// pipeline.
package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance; validator.Validate caches
// struct metadata and is safe for concurrent use.
var validate = validator.New()

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	// Message is the user's chat message.
	Message string `json:"message" validate:"required,min=1,max=2000"`

	// SessionID continues an existing conversation; a new session is
	// created when omitted.
	SessionID string `json:"session_id" validate:"omitempty,max=128"`

	// Limit overrides the number of recommendations returned.
	Limit int `json:"limit" validate:"omitempty,min=1,max=20"`
}

// ProductsRequest is the validated query of GET /api/products.
type ProductsRequest struct {
	Category string  `validate:"omitempty,max=64"`
	Search   string  `validate:"omitempty,max=128"`
	MaxPrice float64 `validate:"omitempty,min=0"`
	Limit    int     `validate:"min=1,max=100"`
}

// validateRequest runs validator tags and flattens failures into one
// user-facing message.
func validateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("invalid fields: %s", strings.Join(fields, ", "))
}
