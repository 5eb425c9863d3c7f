// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the local video decode/encode backend of the merge
// pipeline.
//
// FFmpegCodec implements [types.VideoCodec] by shelling out to ffprobe for
// container validation and to ffmpeg's concat demuxer for frame-order
// preserving concatenation. The output video stream is always encoded with the
// codec ID the caller passes (the merge pipeline uses libx264) rather than a
// source-derived one, so the result plays back deterministically regardless of
// the inputs' encodings.
package codec
