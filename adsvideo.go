// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package adsvideo turns product descriptions into finished advertising videos by
// coordinating a Gemini-driven agent with generative media backends (Imagen, Veo),
// Google Cloud Storage and Firestore.
package adsvideo

// Version is the version of the Ads Creative Video Agent.
var Version = "v0.0.0"
