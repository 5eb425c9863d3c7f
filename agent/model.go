// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/go-a2a/ads-video-agent/types"
)

// GeminiModel represents a [types.Model] backed by the Gemini API on Vertex AI.
type GeminiModel struct {
	client *genai.Client
}

var _ types.Model = (*GeminiModel)(nil)

// NewGeminiModel creates a new [GeminiModel] on the Vertex AI backend of
// projectID in location.
func NewGeminiModel(ctx context.Context, projectID, location string) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  projectID,
		Location: location,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiModel{
		client: client,
	}, nil
}

// GenerateContent implements [types.Model].
func (m *GeminiModel) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return m.client.Models.GenerateContent(ctx, model, contents, config)
}
