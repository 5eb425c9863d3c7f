// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package agent implements the Gemini-driven agent that produces advertising
// videos end to end: storyboard and script creation, thumbnail image
// generation, scene clip generation, final video assembly, and ad tag
// generation.
//
// The agent itself holds no workflow state machine; the workflow is expressed
// as the model instruction, and the model decides tool ordering at inference
// time. The agent's job is the tool loop: send the conversation, execute the
// function calls the model returns, feed the responses back, and repeat until
// the model answers in text.
package agent
