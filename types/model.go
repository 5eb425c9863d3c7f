// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"context"

	"google.golang.org/genai"
)

// Model abstracts content generation for the agent loop.
//
// *genai.Client's Models service satisfies the same call shape; the indirection
// exists so tests can drive the agent with scripted responses.
type Model interface {
	// GenerateContent generates a model turn for the given contents.
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}
