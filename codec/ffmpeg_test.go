// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-a2a/ads-video-agent/types"
)

func TestParseProbeDuration(t *testing.T) {
	tests := map[string]struct {
		out     string
		want    time.Duration
		wantErr bool
	}{
		"fractional": {
			out:  "8.004000\n",
			want: 8004 * time.Millisecond,
		},
		"whole": {
			out:  "4\n",
			want: 4 * time.Second,
		},
		"not a number": {
			out:     "N/A\n",
			wantErr: true,
		},
		"empty": {
			out:     "",
			wantErr: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseProbeDuration(tt.out)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseProbeDuration(%q): expected error, got %v", tt.out, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseProbeDuration(%q): unexpected error: %v", tt.out, err)
			}
			if got != tt.want {
				t.Errorf("parseProbeDuration(%q) = %v, want %v", tt.out, got, tt.want)
			}
		})
	}
}

func TestWriteConcatList(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "concat.txt")

	segments := []types.Segment{
		&segment{path: "/work/videos/a.mp4"},
		&segment{path: "/work/it's/b.mp4"},
	}
	if err := writeConcatList(listPath, segments); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(listPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "file '/work/videos/a.mp4'\n" +
		"file '/work/it'\\''s/b.mp4'\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("concat list (-want +got):\n%s", diff)
	}
}
