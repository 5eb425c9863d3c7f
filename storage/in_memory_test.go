// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-a2a/ads-video-agent/storage"
	"github.com/go-a2a/ads-video-agent/types"
)

func TestInMemoryServiceRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := storage.NewInMemoryService()
	ref := types.ObjectRef{Bucket: "ads", Key: "videos/clip.mp4"}
	svc.Put(ref, []byte("frames"))

	dir := t.TempDir()
	localPath := filepath.Join(dir, "videos", "clip.mp4")
	if err := svc.Download(ctx, ref, localPath); err != nil {
		t.Fatalf("Download: %v", err)
	}

	data, err := os.ReadFile(localPath)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte("frames"), data); diff != "" {
		t.Errorf("downloaded object (-want +got):\n%s", diff)
	}

	out := types.ObjectRef{Bucket: "ads", Key: "stitched.mp4"}
	if err := svc.Upload(ctx, localPath, out, "video/mp4"); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	got, ok := svc.Object(out)
	if !ok {
		t.Fatalf("object %s not stored", out)
	}
	if diff := cmp.Diff([]byte("frames"), got); diff != "" {
		t.Errorf("uploaded object (-want +got):\n%s", diff)
	}
}

func TestInMemoryServiceDownloadMissing(t *testing.T) {
	ctx := context.Background()
	svc := storage.NewInMemoryService()

	ref := types.ObjectRef{Bucket: "ads", Key: "missing.mp4"}
	err := svc.Download(ctx, ref, filepath.Join(t.TempDir(), "missing.mp4"))
	if err == nil {
		t.Fatal("Download of missing object: expected error")
	}
}
