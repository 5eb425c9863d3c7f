// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/go-a2a/ads-video-agent/pkg/logging"
	"github.com/go-a2a/ads-video-agent/types"
)

// DefaultModel is the Gemini model driving the agent.
const DefaultModel = "gemini-2.5-pro"

// DefaultMaxToolTurns bounds the tool loop of a single [Agent.Run] call.
const DefaultMaxToolTurns = 32

// Agent represents an agent powered by a Gemini model with function-calling tools.
type Agent struct {
	name        string
	model       string
	instruction string

	generator types.Model
	tools     map[string]types.Tool
	// declaration registration order, stable across runs
	toolNames []string

	maxToolTurns int
}

// Option is a functional option for configuring the [Agent].
type Option func(*Agent)

// WithModel overrides the Gemini model name. Defaults to [DefaultModel].
func WithModel(model string) Option {
	return func(a *Agent) {
		a.model = model
	}
}

// WithMaxToolTurns bounds the number of model turns in one Run call.
func WithMaxToolTurns(n int) Option {
	return func(a *Agent) {
		a.maxToolTurns = n
	}
}

// New creates a new [Agent] with the given name, instruction, content
// generator and tools.
func New(name, instruction string, generator types.Model, tools []types.Tool, opts ...Option) *Agent {
	a := &Agent{
		name:         name,
		model:        DefaultModel,
		instruction:  instruction,
		generator:    generator,
		tools:        make(map[string]types.Tool, len(tools)),
		maxToolTurns: DefaultMaxToolTurns,
	}
	for _, tl := range tools {
		a.tools[tl.Name()] = tl
		a.toolNames = append(a.toolNames, tl.Name())
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the agent name.
func (a *Agent) Name() string {
	return a.name
}

// Run sends prompt to the model and drives the tool loop until the model
// replies with text, returning that reply.
func (a *Agent) Run(ctx context.Context, prompt string) (string, error) {
	logger := logging.FromContext(ctx)

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(a.instruction, genai.RoleUser),
	}
	if decls := a.declarations(); len(decls) > 0 {
		config.Tools = []*genai.Tool{
			{FunctionDeclarations: decls},
		}
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	for range a.maxToolTurns {
		resp, err := a.generator.GenerateContent(ctx, a.model, contents, config)
		if err != nil {
			return "", fmt.Errorf("generate content: %w", err)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return "", fmt.Errorf("model returned no candidates")
		}
		content := resp.Candidates[0].Content
		contents = append(contents, content)

		calls := functionCalls(content)
		if len(calls) == 0 {
			return textOf(content), nil
		}

		parts := make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			logger.Info("tool call", slog.String("agent", a.name), slog.String("tool", call.Name))
			parts = append(parts, genai.NewPartFromFunctionResponse(call.Name, a.dispatch(ctx, call)))
		}
		contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))
	}

	return "", fmt.Errorf("tool loop did not settle within %d turns", a.maxToolTurns)
}

// dispatch runs one function call and renders its result or error as the
// function response payload. Tool errors go back to the model rather than
// aborting the run, so the model can report or recover.
func (a *Agent) dispatch(ctx context.Context, call *genai.FunctionCall) map[string]any {
	logger := logging.FromContext(ctx)

	tl, ok := a.tools[call.Name]
	if !ok {
		return map[string]any{"error": fmt.Sprintf("unknown tool %q", call.Name)}
	}

	result, err := tl.Run(ctx, call.Args)
	if err != nil {
		logger.Error("tool failed", slog.String("tool", call.Name), slog.Any("error", err))
		return map[string]any{"error": err.Error()}
	}

	if m, ok := result.(map[string]any); ok {
		return m
	}
	return map[string]any{"result": result}
}

// declarations returns the function declarations of all tools in registration order.
func (a *Agent) declarations() []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(a.toolNames))
	for _, name := range a.toolNames {
		decls = append(decls, a.tools[name].Declaration())
	}
	return decls
}

// functionCalls extracts the function call parts of a model turn.
func functionCalls(content *genai.Content) []*genai.FunctionCall {
	var calls []*genai.FunctionCall
	for _, part := range content.Parts {
		if part.FunctionCall != nil {
			calls = append(calls, part.FunctionCall)
		}
	}
	return calls
}

// textOf joins the text parts of a model turn.
func textOf(content *genai.Content) string {
	var sb strings.Builder
	for _, part := range content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}
