// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/go-a2a/ads-video-agent/merge"
	"github.com/go-a2a/ads-video-agent/types"
)

// MergeVideosTool concatenates two GCS-hosted videos through the merge pipeline.
type MergeVideosTool struct {
	*Tool

	pipeline *merge.Pipeline
}

var _ types.Tool = (*MergeVideosTool)(nil)

// NewMergeVideosTool returns a new [MergeVideosTool] backed by pipeline.
func NewMergeVideosTool(pipeline *merge.Pipeline) *MergeVideosTool {
	return &MergeVideosTool{
		Tool: NewTool(
			"merge_videos",
			"Downloads two video files from GCS, concatenates them in order, and uploads the combined video back to GCS. Returns the GCS URI of the concatenated video.",
			&genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"video_uri_1": {
						Type:        genai.TypeString,
						Description: "GCS URI of the first video, e.g. gs://your-bucket/video1.mp4",
					},
					"video_uri_2": {
						Type:        genai.TypeString,
						Description: "GCS URI of the second video, e.g. gs://your-bucket/video2.mp4",
					},
				},
				Required: []string{"video_uri_1", "video_uri_2"},
			},
		),
		pipeline: pipeline,
	}
}

// Run implements [types.Tool].
func (t *MergeVideosTool) Run(ctx context.Context, args map[string]any) (any, error) {
	a, err := decodeArgs[struct {
		VideoURI1 string `json:"video_uri_1"`
		VideoURI2 string `json:"video_uri_2"`
	}](args)
	if err != nil {
		return nil, err
	}

	refA, err := types.ParseObjectRef(a.VideoURI1)
	if err != nil {
		return nil, err
	}
	refB, err := types.ParseObjectRef(a.VideoURI2)
	if err != nil {
		return nil, err
	}

	out, err := t.pipeline.Merge(ctx, refA, refB)
	if err != nil {
		return nil, fmt.Errorf("merge videos: %w", err)
	}
	return map[string]any{
		"output_uri": out.String(),
	}, nil
}
