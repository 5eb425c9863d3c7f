// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package genmedia

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/go-a2a/ads-video-agent/pkg/logging"
	"github.com/go-a2a/ads-video-agent/types"
)

// Default model names for the generative media backends.
const (
	DefaultVideoModel = "veo-3.0-generate-001"
	DefaultImageModel = "imagen-4.0-generate-preview-06-06"
)

// DefaultPollInterval is the wait between long-running operation polls.
const DefaultPollInterval = 15 * time.Second

// videoFPS is the frame rate requested for generated clips. Segments merged
// later must share a frame rate, so it is fixed rather than model-chosen.
const videoFPS int32 = 24

// mediaAPI is the slice of the genai client surface the service calls.
type mediaAPI interface {
	GenerateVideos(ctx context.Context, model, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error)
	GetVideosOperation(ctx context.Context, operation *genai.GenerateVideosOperation, config *genai.GetOperationConfig) (*genai.GenerateVideosOperation, error)
	GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// genaiAPI adapts [genai.Client] to [mediaAPI].
type genaiAPI struct {
	client *genai.Client
}

var _ mediaAPI = (*genaiAPI)(nil)

func (a *genaiAPI) GenerateVideos(ctx context.Context, model, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	return a.client.Models.GenerateVideos(ctx, model, prompt, image, config)
}

func (a *genaiAPI) GetVideosOperation(ctx context.Context, operation *genai.GenerateVideosOperation, config *genai.GetOperationConfig) (*genai.GenerateVideosOperation, error) {
	return a.client.Operations.GetVideosOperation(ctx, operation, config)
}

func (a *genaiAPI) GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	return a.client.Models.GenerateImages(ctx, model, prompt, config)
}

// Service represents a client for the Veo and Imagen generative media models
// on Vertex AI.
type Service struct {
	api    mediaAPI
	bucket string

	videoModel   string
	imageModel   string
	pollInterval time.Duration
	now          func() time.Time
}

// Option is a functional option for configuring the [Service].
type Option func(*Service)

// WithVideoModel sets the Veo model name.
func WithVideoModel(model string) Option {
	return func(s *Service) {
		s.videoModel = model
	}
}

// WithImageModel sets the Imagen model name.
func WithImageModel(model string) Option {
	return func(s *Service) {
		s.imageModel = model
	}
}

// WithPollInterval sets the wait between operation polls.
func WithPollInterval(d time.Duration) Option {
	return func(s *Service) {
		s.pollInterval = d
	}
}

// NewService creates a new [Service] on the Vertex AI backend of projectID in
// location, writing generated media into the given bucket.
func NewService(ctx context.Context, projectID, location, bucket string, opts ...Option) (*Service, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  projectID,
		Location: location,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newService(&genaiAPI{client: client}, bucket, opts...), nil
}

func newService(api mediaAPI, bucket string, opts ...Option) *Service {
	s := &Service{
		api:          api,
		bucket:       bucket,
		videoModel:   DefaultVideoModel,
		imageModel:   DefaultImageModel,
		pollInterval: DefaultPollInterval,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateVideo generates a video clip from the prompt with the Veo model and
// returns the GCS URI of the result.
//
// The call blocks until the long-running generation operation completes,
// polling at the configured interval.
func (s *Service) GenerateVideo(ctx context.Context, prompt string, durationSeconds int32) (string, error) {
	logger := logging.FromContext(ctx)

	outputURI := mediaOutputURI(s.bucket, "videos", s.now())
	config := &genai.GenerateVideosConfig{
		NumberOfVideos:  1,
		FPS:             types.ToPtr(videoFPS),
		DurationSeconds: types.ToPtr(durationSeconds),
		EnhancePrompt:   true,
		OutputGCSURI:    outputURI,
	}

	operation, err := s.api.GenerateVideos(ctx, s.videoModel, prompt, nil, config)
	if err != nil {
		return "", fmt.Errorf("generate video: %w", err)
	}
	logger.Info("video generation started", slog.String("model", s.videoModel), slog.String("output", outputURI))

	for !operation.Done {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.pollInterval):
		}
		operation, err = s.api.GetVideosOperation(ctx, operation, nil)
		if err != nil {
			return "", fmt.Errorf("poll video generation: %w", err)
		}
	}

	if operation.Error != nil {
		return "", fmt.Errorf("video generation failed: %v", operation.Error)
	}
	if operation.Response == nil || len(operation.Response.GeneratedVideos) == 0 || operation.Response.GeneratedVideos[0].Video == nil {
		return "", fmt.Errorf("video generation completed without a generated video")
	}

	videoURI := operation.Response.GeneratedVideos[0].Video.URI
	logger.Info("video generation succeeded", slog.String("video", videoURI))
	return videoURI, nil
}

// GenerateImage generates an image from the prompt with the Imagen model and
// returns the GCS URI of the result.
func (s *Service) GenerateImage(ctx context.Context, prompt string) (string, error) {
	logger := logging.FromContext(ctx)

	outputURI := mediaOutputURI(s.bucket, "images", s.now())
	config := &genai.GenerateImagesConfig{
		NumberOfImages:    1,
		AspectRatio:       "16:9",
		PersonGeneration:  genai.PersonGenerationAllowAll,
		SafetyFilterLevel: genai.SafetyFilterLevelBlockOnlyHigh,
		AddWatermark:      true,
		OutputGCSURI:      outputURI,
	}

	resp, err := s.api.GenerateImages(ctx, s.imageModel, prompt, config)
	if err != nil {
		return "", fmt.Errorf("generate image: %w", err)
	}
	if len(resp.GeneratedImages) == 0 {
		return "", fmt.Errorf("image generation completed without a generated image")
	}

	imageURI := outputURI
	if img := resp.GeneratedImages[0].Image; img != nil && img.GCSURI != "" {
		imageURI = img.GCSURI
	}
	logger.Info("image generation succeeded", slog.String("image", imageURI))
	return imageURI, nil
}

// mediaOutputURI builds the timestamped GCS output prefix for generated media.
func mediaOutputURI(bucket, kind string, now time.Time) string {
	return fmt.Sprintf("%s://%s/%s/%s", types.GCSScheme, bucket, kind, now.Format("2006-01-02_15-04-05"))
}
