// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package merge

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/go-a2a/ads-video-agent/pkg/logging"
	"github.com/go-a2a/ads-video-agent/types"
)

// OutputCodecID is the video codec of the stitched output.
//
// The output encoding is fixed rather than derived from the inputs so the
// published object plays back identically regardless of how the source clips
// were encoded.
const OutputCodecID = "libx264"

// outputContentType is the MIME type of the published object.
const outputContentType = "video/mp4"

// Pipeline merges two remotely stored video segments into one.
type Pipeline struct {
	storage types.BlobStorage
	codec   types.VideoCodec

	baseDir string
	codecID string
}

// Option is a functional option for configuring the [Pipeline].
type Option func(*Pipeline)

// WithBaseDir sets the directory under which per-call workspaces are created.
// Defaults to [os.TempDir].
func WithBaseDir(dir string) Option {
	return func(p *Pipeline) {
		p.baseDir = dir
	}
}

// WithOutputCodec overrides the output video codec ID. Defaults to [OutputCodecID].
func WithOutputCodec(codecID string) Option {
	return func(p *Pipeline) {
		p.codecID = codecID
	}
}

// NewPipeline creates a new [Pipeline] with the given storage and codec collaborators.
func NewPipeline(storage types.BlobStorage, codec types.VideoCodec, opts ...Option) *Pipeline {
	p := &Pipeline{
		storage: storage,
		codec:   codec,
		baseDir: os.TempDir(),
		codecID: OutputCodecID,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Merge downloads refA and refB, concatenates them in input order, and uploads
// the result to refA's bucket under a freshly generated unique key.
//
// On success the new object's reference is returned. On failure the returned
// error carries the failing phase as a [types.PipelineError]; the local
// workspace is removed either way.
func (p *Pipeline) Merge(ctx context.Context, refA, refB types.ObjectRef) (types.ObjectRef, error) {
	logger := logging.FromContext(ctx)

	// Workspace names are derived from a fresh UUID so concurrent invocations
	// on the same host never contend on the same local files.
	workDir := filepath.Join(p.baseDir, "merge-"+uuid.NewString())
	if err := os.MkdirAll(workDir, 0o700); err != nil {
		return types.ObjectRef{}, fmt.Errorf("create workspace: %w", err)
	}

	var segments []types.Segment
	defer func() {
		for _, seg := range segments {
			if err := seg.Close(); err != nil {
				logger.Warn("close segment", slog.String("path", seg.Path()), slog.Any("error", err))
			}
		}
		if err := os.RemoveAll(workDir); err != nil {
			logger.Warn("remove workspace", slog.String("dir", workDir), slog.Any("error", err))
		}
	}()

	refs := []types.ObjectRef{refA, refB}
	rels := make([]string, len(refs))
	localPaths := make([]string, len(refs))
	for i, ref := range refs {
		rel, err := localSegmentKey(ref.Key)
		if err != nil {
			return types.ObjectRef{}, types.NewPipelineError(types.PhaseFetch, err)
		}
		rels[i] = rel
		localPaths[i] = filepath.Join(workDir, rel)
	}
	// The same key passed twice must not share a local file.
	if localPaths[1] == localPaths[0] {
		localPaths[1] = filepath.Join(workDir, "b", rels[1])
	}

	// Fetch phase. The inputs are independent, so both transfers run in
	// parallel; the first failure cancels the other and aborts the call.
	eg, egCtx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		eg.Go(func() error {
			if err := p.storage.Download(egCtx, ref, localPaths[i]); err != nil {
				return err
			}
			logger.Info("downloaded segment", slog.String("object", ref.String()), slog.String("path", localPaths[i]))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return types.ObjectRef{}, types.NewPipelineError(types.PhaseFetch, err)
	}

	// Decode phase.
	for _, local := range localPaths {
		seg, err := p.codec.Open(local)
		if err != nil {
			return types.ObjectRef{}, types.NewPipelineError(types.PhaseDecode, err)
		}
		segments = append(segments, seg)
	}

	// Concatenate phase.
	outName := fmt.Sprintf("stitched_%s.mp4", uuid.NewString())
	outPath := filepath.Join(workDir, outName)
	if err := p.codec.Concatenate(ctx, segments, outPath, p.codecID); err != nil {
		return types.ObjectRef{}, types.NewPipelineError(types.PhaseEncode, err)
	}
	logger.Info("stitched segments", slog.String("path", outPath))

	// Publish phase. The output key is fresh per call, so the shared bucket is
	// only ever appended to and concurrent invocations cannot overwrite each
	// other.
	outRef := types.ObjectRef{Bucket: refA.Bucket, Key: outName}
	if err := p.storage.Upload(ctx, outPath, outRef, outputContentType); err != nil {
		return types.ObjectRef{}, types.NewPipelineError(types.PhaseUpload, err)
	}
	logger.Info("uploaded stitched video", slog.String("object", outRef.String()))

	return outRef, nil
}

// localSegmentKey validates that key stays inside the workspace when mirrored
// locally and returns its filesystem-relative form. Keys with leading slashes
// or parent-directory segments would place the download outside the workspace,
// beyond the reach of the deferred cleanup.
func localSegmentKey(key string) (string, error) {
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "/") || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("object key %q escapes the workspace", key)
	}
	return filepath.FromSlash(cleaned), nil
}
