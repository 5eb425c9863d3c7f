// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"google.golang.org/genai"
)

// Tool represents the declaration-carrying base of all tools.
type Tool struct {
	// The name of the tool.
	name string

	// The description of the tool.
	description string

	// The parameter schema of the tool.
	parameters *genai.Schema
}

// NewTool returns the tool with the given name, description and parameter schema.
func NewTool(name, description string, parameters *genai.Schema) *Tool {
	return &Tool{
		name:        name,
		description: description,
		parameters:  parameters,
	}
}

// Name implements [types.Tool].
func (t *Tool) Name() string {
	return t.name
}

// Description implements [types.Tool].
func (t *Tool) Description() string {
	return t.description
}

// Declaration implements [types.Tool].
func (t *Tool) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        t.name,
		Description: t.description,
		Parameters:  t.parameters,
	}
}

// decodeArgs decodes a model function call's argument map into T.
func decodeArgs[T any](args map[string]any) (T, error) {
	var v T
	data, err := json.Marshal(args)
	if err != nil {
		return v, fmt.Errorf("encode tool arguments: %w", err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode tool arguments: %w", err)
	}
	return v, nil
}
