// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package tool implements the function-calling tools the agent's model can
// invoke: generative media (Veo video, Imagen image), the video segment merge
// pipeline, and the document store read/write operations.
//
// Each tool carries a genai function declaration describing its parameters;
// the agent registers the declarations on the model request and dispatches the
// model's function calls back through [types.Tool.Run].
package tool
