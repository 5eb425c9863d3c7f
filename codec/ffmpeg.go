// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-a2a/ads-video-agent/types"
)

// Default binary names, overridable for hosts with renamed installs.
const (
	DefaultFFmpegPath  = "ffmpeg"
	DefaultFFprobePath = "ffprobe"
)

// FFmpegCodec represents a [types.VideoCodec] implementation backed by the
// ffmpeg and ffprobe command line tools.
type FFmpegCodec struct {
	ffmpegPath  string
	ffprobePath string
}

var _ types.VideoCodec = (*FFmpegCodec)(nil)

// Option is a functional option for configuring the [FFmpegCodec].
type Option func(*FFmpegCodec)

// WithFFmpegPath sets the ffmpeg binary path.
func WithFFmpegPath(path string) Option {
	return func(c *FFmpegCodec) {
		c.ffmpegPath = path
	}
}

// WithFFprobePath sets the ffprobe binary path.
func WithFFprobePath(path string) Option {
	return func(c *FFmpegCodec) {
		c.ffprobePath = path
	}
}

// NewFFmpegCodec creates a new [FFmpegCodec].
func NewFFmpegCodec(opts ...Option) *FFmpegCodec {
	c := &FFmpegCodec{
		ffmpegPath:  DefaultFFmpegPath,
		ffprobePath: DefaultFFprobePath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// segment is a probed local video file.
type segment struct {
	path     string
	duration time.Duration
}

var _ types.Segment = (*segment)(nil)

// Path implements [types.Segment].
func (s *segment) Path() string { return s.path }

// Duration implements [types.Segment].
func (s *segment) Duration() time.Duration { return s.duration }

// Close implements [types.Segment].
//
// ffmpeg holds no decoder state between invocations, so closing a probed
// segment releases nothing.
func (s *segment) Close() error { return nil }

// Open implements [types.VideoCodec].
//
// The file is probed with ffprobe; a file ffprobe cannot parse as a video
// container fails here rather than at concatenation time.
func (c *FFmpegCodec) Open(path string) (types.Segment, error) {
	out, err := exec.Command(c.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", path, err)
	}

	duration, err := parseProbeDuration(string(out))
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", path, err)
	}

	return &segment{path: path, duration: duration}, nil
}

// Concatenate implements [types.VideoCodec].
func (c *FFmpegCodec) Concatenate(ctx context.Context, segments []types.Segment, outPath, codecID string) error {
	if len(segments) == 0 {
		return fmt.Errorf("concatenate: no segments")
	}

	listPath := filepath.Join(filepath.Dir(outPath), "concat.txt")
	if err := writeConcatList(listPath, segments); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, c.ffmpegPath,
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c:v", codecID,
		"-c:a", "aac",
		"-pix_fmt", "yuv420p",
		outPath,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg concat: %w: %s", err, output)
	}
	return nil
}

// writeConcatList writes the ffmpeg concat demuxer input list, one segment per
// line in playback order.
func writeConcatList(path string, segments []types.Segment) error {
	var sb strings.Builder
	for _, seg := range segments {
		// single quotes in paths are escaped the concat-demuxer way: ' -> '\''
		escaped := strings.ReplaceAll(seg.Path(), `'`, `'\''`)
		fmt.Fprintf(&sb, "file '%s'\n", escaped)
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// parseProbeDuration parses ffprobe's "8.004000" duration output.
func parseProbeDuration(out string) (time.Duration, error) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", strings.TrimSpace(out), err)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
