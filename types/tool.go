// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"context"

	"google.golang.org/genai"
)

// Tool represents a function-calling tool exposed to the agent's model.
type Tool interface {
	// Name returns the tool name the model calls it by.
	Name() string

	// Description returns the description shown to the model.
	Description() string

	// Declaration returns the genai function declaration for the tool.
	Declaration() *genai.FunctionDeclaration

	// Run executes the tool with the arguments of a model function call.
	Run(ctx context.Context, args map[string]any) (any, error)
}
