// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package agent

import (
	"github.com/go-a2a/ads-video-agent/merge"
	"github.com/go-a2a/ads-video-agent/tool"
	"github.com/go-a2a/ads-video-agent/types"
)

// NewAdsCreativeVideoAgent creates the root agent of the ads video workflow,
// wiring the generative media, merge and document store tools onto the Gemini
// model.
func NewAdsCreativeVideoAgent(
	generator types.Model,
	pipeline *merge.Pipeline,
	videos tool.VideoGenerator,
	images tool.ImageGenerator,
	store types.DocumentStore,
	opts ...Option,
) *Agent {
	return New("AdsCreativeVideoAgent", adsCreativeVideoInstruction, generator, []types.Tool{
		tool.NewGenerateImageTool(images),
		tool.NewGenerateVideoTool(videos),
		tool.NewMergeVideosTool(pipeline),
		tool.NewStoreDocumentTool(store),
		tool.NewReadDocumentsTool(store),
	}, opts...)
}
