// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"context"
	"time"
)

// Segment is a decoded handle over one local video file.
//
// A segment is owned by the pipeline invocation that opened it and must be
// closed before the invocation's workspace is deleted.
type Segment interface {
	// Path returns the local file the segment was opened from.
	Path() string

	// Duration returns the playable duration of the segment.
	Duration() time.Duration

	// Close releases the decoded handle.
	Close() error
}

// VideoCodec abstracts the local video decode/encode library.
//
// Open fails on malformed containers; Concatenate appends the given segments'
// frames in order into a single output file encoded with the explicit codecID.
type VideoCodec interface {
	// Open opens the file at path as a decoded [Segment].
	Open(path string) (Segment, error)

	// Concatenate writes segments, in order, to outPath using codecID for
	// the output video stream.
	Concatenate(ctx context.Context, segments []Segment, outPath, codecID string) error
}
