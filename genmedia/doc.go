// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package genmedia calls the hosted generative media models producing the ad's
// assets: Veo for video clips and Imagen for thumbnail images.
//
// Both models run on Vertex AI through the genai client and write their output
// directly to GCS under timestamped keys; this package only submits requests,
// polls long-running operations, and hands back the resulting object URIs.
package genmedia
