// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/go-a2a/ads-video-agent/types"
)

// VideoGenerator generates a video clip from a prompt and returns its GCS URI.
type VideoGenerator interface {
	GenerateVideo(ctx context.Context, prompt string, durationSeconds int32) (string, error)
}

// ImageGenerator generates an image from a prompt and returns its GCS URI.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// defaultClipSeconds is the clip length used when the model omits a duration.
const defaultClipSeconds = 8

// GenerateVideoTool generates an ad scene clip with the Veo model.
type GenerateVideoTool struct {
	*Tool

	generator VideoGenerator
}

var _ types.Tool = (*GenerateVideoTool)(nil)

// NewGenerateVideoTool returns a new [GenerateVideoTool] backed by generator.
func NewGenerateVideoTool(generator VideoGenerator) *GenerateVideoTool {
	return &GenerateVideoTool{
		Tool: NewTool(
			"generate_video_with_veo",
			"Generates a video from a text prompt using the Veo model. Returns the GCS URI of the generated video.",
			&genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"prompt": {
						Type:        genai.TypeString,
						Description: "Text description of the video to generate.",
					},
					"duration_seconds": {
						Type:        genai.TypeInteger,
						Description: "Desired duration of the video in seconds.",
					},
				},
				Required: []string{"prompt"},
			},
		),
		generator: generator,
	}
}

// Run implements [types.Tool].
func (t *GenerateVideoTool) Run(ctx context.Context, args map[string]any) (any, error) {
	a, err := decodeArgs[struct {
		Prompt          string  `json:"prompt"`
		DurationSeconds float64 `json:"duration_seconds"`
	}](args)
	if err != nil {
		return nil, err
	}

	duration := int32(a.DurationSeconds)
	if duration <= 0 {
		duration = defaultClipSeconds
	}

	uri, err := t.generator.GenerateVideo(ctx, a.Prompt, duration)
	if err != nil {
		return nil, fmt.Errorf("generate video: %w", err)
	}
	return map[string]any{
		"video_uri": uri,
	}, nil
}

// GenerateImageTool generates a thumbnail image with the Imagen model.
type GenerateImageTool struct {
	*Tool

	generator ImageGenerator
}

var _ types.Tool = (*GenerateImageTool)(nil)

// NewGenerateImageTool returns a new [GenerateImageTool] backed by generator.
func NewGenerateImageTool(generator ImageGenerator) *GenerateImageTool {
	return &GenerateImageTool{
		Tool: NewTool(
			"generate_image_with_imagen",
			"Generates an image from a text prompt using the Imagen model. Returns the GCS URI of the generated image.",
			&genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"prompt": {
						Type:        genai.TypeString,
						Description: "Text description of the image to generate.",
					},
				},
				Required: []string{"prompt"},
			},
		),
		generator: generator,
	}
}

// Run implements [types.Tool].
func (t *GenerateImageTool) Run(ctx context.Context, args map[string]any) (any, error) {
	a, err := decodeArgs[struct {
		Prompt string `json:"prompt"`
	}](args)
	if err != nil {
		return nil, err
	}

	uri, err := t.generator.GenerateImage(ctx, a.Prompt)
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}
	return map[string]any{
		"image_uri": uri,
	}, nil
}
