// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-a2a/ads-video-agent/types"
)

func TestParseObjectRef(t *testing.T) {
	tests := map[string]struct {
		uri     string
		want    types.ObjectRef
		wantErr bool
	}{
		"simple": {
			uri:  "gs://my-bucket/video.mp4",
			want: types.ObjectRef{Bucket: "my-bucket", Key: "video.mp4"},
		},
		"nested key": {
			uri:  "gs://my-bucket/videos/2025-08-30/clip.mp4",
			want: types.ObjectRef{Bucket: "my-bucket", Key: "videos/2025-08-30/clip.mp4"},
		},
		"missing scheme": {
			uri:     "my-bucket/video.mp4",
			wantErr: true,
		},
		"wrong scheme": {
			uri:     "s3://my-bucket/video.mp4",
			wantErr: true,
		},
		"missing key": {
			uri:     "gs://my-bucket",
			wantErr: true,
		},
		"empty key": {
			uri:     "gs://my-bucket/",
			wantErr: true,
		},
		"empty bucket": {
			uri:     "gs:///video.mp4",
			wantErr: true,
		},
		"empty": {
			uri:     "",
			wantErr: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := types.ParseObjectRef(tt.uri)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseObjectRef(%q): expected error, got %v", tt.uri, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseObjectRef(%q): unexpected error: %v", tt.uri, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseObjectRef(%q): (-want +got):\n%s", tt.uri, diff)
			}
			if got.String() != tt.uri {
				t.Errorf("String() = %q, want %q", got.String(), tt.uri)
			}
		})
	}
}

func TestIsPhase(t *testing.T) {
	err := types.NewPipelineError(types.PhaseFetch, errTransfer)

	if !types.IsPhase(err, types.PhaseFetch) {
		t.Errorf("IsPhase(err, PhaseFetch) = false, want true")
	}
	if types.IsPhase(err, types.PhaseUpload) {
		t.Errorf("IsPhase(err, PhaseUpload) = true, want false")
	}

	perr, ok := types.AsPipelineError(err)
	if !ok {
		t.Fatal("AsPipelineError(err) = false, want true")
	}
	if perr.Unwrap() != errTransfer {
		t.Errorf("Unwrap() = %v, want %v", perr.Unwrap(), errTransfer)
	}
}

var errTransfer = &transferError{}

type transferError struct{}

func (*transferError) Error() string { return "connection reset" }
