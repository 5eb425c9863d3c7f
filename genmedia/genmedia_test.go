// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package genmedia

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/genai"

	"github.com/go-a2a/ads-video-agent/types"
)

// scriptedAPI replays canned generation operations and records every call.
type scriptedAPI struct {
	operations []*genai.GenerateVideosOperation
	polls      int
	videoCfg   *genai.GenerateVideosConfig
	pollErr    error

	imageResp *genai.GenerateImagesResponse
	imageCfg  *genai.GenerateImagesConfig
	imageErr  error
}

var _ mediaAPI = (*scriptedAPI)(nil)

func (a *scriptedAPI) GenerateVideos(ctx context.Context, model, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	a.videoCfg = config
	return a.operations[0], nil
}

func (a *scriptedAPI) GetVideosOperation(ctx context.Context, operation *genai.GenerateVideosOperation, config *genai.GetOperationConfig) (*genai.GenerateVideosOperation, error) {
	if a.pollErr != nil {
		return nil, a.pollErr
	}
	a.polls++
	return a.operations[a.polls], nil
}

func (a *scriptedAPI) GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	a.imageCfg = config
	return a.imageResp, a.imageErr
}

func doneOperation(videos ...*genai.GeneratedVideo) *genai.GenerateVideosOperation {
	return &genai.GenerateVideosOperation{
		Done:     true,
		Response: &genai.GenerateVideosResponse{GeneratedVideos: videos},
	}
}

func TestGenerateVideoPollsUntilDone(t *testing.T) {
	ctx := context.Background()
	api := &scriptedAPI{operations: []*genai.GenerateVideosOperation{
		{},
		{},
		doneOperation(&genai.GeneratedVideo{Video: &genai.Video{URI: "gs://ads/videos/clip.mp4"}}),
	}}
	s := newService(api, "ads", WithPollInterval(time.Millisecond))

	got, err := s.GenerateVideo(ctx, "a cat driving", 8)
	if err != nil {
		t.Fatalf("GenerateVideo: %v", err)
	}
	if got != "gs://ads/videos/clip.mp4" {
		t.Errorf("GenerateVideo = %q", got)
	}
	if api.polls != 2 {
		t.Errorf("operation polled %d times, want 2", api.polls)
	}
}

func TestGenerateVideoConfig(t *testing.T) {
	ctx := context.Background()
	api := &scriptedAPI{operations: []*genai.GenerateVideosOperation{
		doneOperation(&genai.GeneratedVideo{Video: &genai.Video{URI: "gs://ads/videos/clip.mp4"}}),
	}}
	s := newService(api, "ads", WithPollInterval(time.Millisecond))

	if _, err := s.GenerateVideo(ctx, "a cat driving", 8); err != nil {
		t.Fatalf("GenerateVideo: %v", err)
	}

	cfg := api.videoCfg
	if cfg.NumberOfVideos != 1 {
		t.Errorf("NumberOfVideos = %d, want 1", cfg.NumberOfVideos)
	}
	if cfg.DurationSeconds == nil || *cfg.DurationSeconds != 8 {
		t.Errorf("DurationSeconds = %v, want 8", cfg.DurationSeconds)
	}
	if cfg.FPS == nil || *cfg.FPS != 24 {
		t.Errorf("FPS = %v, want 24", cfg.FPS)
	}
	if !cfg.EnhancePrompt {
		t.Errorf("EnhancePrompt = %v, want true", cfg.EnhancePrompt)
	}
	if cfg.OutputGCSURI == "" {
		t.Error("OutputGCSURI not set")
	}
}

func TestGenerateVideoOperationError(t *testing.T) {
	ctx := context.Background()
	api := &scriptedAPI{operations: []*genai.GenerateVideosOperation{
		{},
		{Done: true, Error: map[string]any{"message": "quota exhausted"}},
	}}
	s := newService(api, "ads", WithPollInterval(time.Millisecond))

	if _, err := s.GenerateVideo(ctx, "a cat driving", 8); err == nil {
		t.Fatal("GenerateVideo: expected error from failed operation")
	}
}

func TestGenerateVideoNilVideo(t *testing.T) {
	ctx := context.Background()
	api := &scriptedAPI{operations: []*genai.GenerateVideosOperation{
		doneOperation(&genai.GeneratedVideo{}),
	}}
	s := newService(api, "ads", WithPollInterval(time.Millisecond))

	if _, err := s.GenerateVideo(ctx, "a cat driving", 8); err == nil {
		t.Fatal("GenerateVideo: expected error when the operation carries no video")
	}
}

func TestGenerateVideoContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	api := &scriptedAPI{
		operations: []*genai.GenerateVideosOperation{{}},
		pollErr:    errors.New("poll after cancellation"),
	}
	s := newService(api, "ads", WithPollInterval(time.Hour))

	_, err := s.GenerateVideo(ctx, "a cat driving", 8)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("GenerateVideo error = %v, want context.Canceled", err)
	}
	if api.polls != 0 {
		t.Errorf("operation polled %d times after cancellation", api.polls)
	}
}

func TestGenerateImage(t *testing.T) {
	ctx := context.Background()
	api := &scriptedAPI{imageResp: &genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{{
			Image: &genai.Image{GCSURI: "gs://ads/images/thumb.png"},
		}},
	}}
	s := newService(api, "ads")

	got, err := s.GenerateImage(ctx, "a product shot")
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	if got != "gs://ads/images/thumb.png" {
		t.Errorf("GenerateImage = %q", got)
	}

	cfg := api.imageCfg
	if cfg.NumberOfImages != 1 {
		t.Errorf("NumberOfImages = %d, want 1", cfg.NumberOfImages)
	}
	if cfg.AspectRatio != "16:9" {
		t.Errorf("AspectRatio = %q, want 16:9", cfg.AspectRatio)
	}
	if !cfg.AddWatermark {
		t.Errorf("AddWatermark = %v, want true", cfg.AddWatermark)
	}
	if cfg.PersonGeneration != genai.PersonGenerationAllowAll {
		t.Errorf("PersonGeneration = %q", cfg.PersonGeneration)
	}
	if cfg.SafetyFilterLevel != genai.SafetyFilterLevelBlockOnlyHigh {
		t.Errorf("SafetyFilterLevel = %q", cfg.SafetyFilterLevel)
	}
}

func TestGenerateImageNilImage(t *testing.T) {
	ctx := context.Background()
	api := &scriptedAPI{imageResp: &genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{{}},
	}}
	s := newService(api, "ads")

	got, err := s.GenerateImage(ctx, "a product shot")
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	// falls back to the output prefix when the response omits the object URI
	if _, perr := types.ParseObjectRef(got); perr != nil {
		t.Errorf("GenerateImage fallback %q is not a valid reference: %v", got, perr)
	}
}

func TestMediaOutputURI(t *testing.T) {
	now := time.Date(2025, 8, 30, 14, 5, 9, 0, time.UTC)

	got := mediaOutputURI("ads-assets", "videos", now)
	want := "gs://ads-assets/videos/2025-08-30_14-05-09"
	if got != want {
		t.Errorf("mediaOutputURI = %q, want %q", got, want)
	}

	// output prefixes are valid object references
	if _, err := types.ParseObjectRef(got); err != nil {
		t.Errorf("mediaOutputURI produced an unparseable reference: %v", err)
	}
}
