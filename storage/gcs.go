// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cloud.google.com/go/auth/credentials"
	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/go-a2a/ads-video-agent/types"
)

// GCSService represents a blob storage implementation using Google Cloud Storage (GCS).
type GCSService struct {
	client *storage.Client
}

var _ types.BlobStorage = (*GCSService)(nil)

// NewGCSService creates a new [GCSService] instance using application default credentials.
func NewGCSService(ctx context.Context) (*GCSService, error) {
	creds, err := credentials.DetectDefault(&credentials.DetectOptions{
		Scopes: []string{
			storage.ScopeFullControl,
			storage.ScopeReadWrite,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get credentials for storage: %w", err)
	}

	client, err := storage.NewGRPCClient(ctx, option.WithAuthCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &GCSService{
		client: client,
	}, nil
}

// Download implements [types.BlobStorage].
func (s *GCSService) Download(ctx context.Context, ref types.ObjectRef, localPath string) error {
	r, err := s.client.Bucket(ref.Bucket).Object(ref.Key).NewReader(ctx)
	if err != nil {
		return fmt.Errorf("open %s: %w", ref, err)
	}
	defer r.Close()

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(localPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("download %s: %w", ref, err)
	}
	return f.Close()
}

// Upload implements [types.BlobStorage].
func (s *GCSService) Upload(ctx context.Context, localPath string, ref types.ObjectRef, contentType string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := s.client.Bucket(ref.Bucket).Object(ref.Key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return fmt.Errorf("upload %s: %w", ref, err)
	}
	// transfer errors surface on Close
	if err := w.Close(); err != nil {
		return fmt.Errorf("upload %s: %w", ref, err)
	}
	return nil
}

// Close implements [types.BlobStorage].
func (s *GCSService) Close() error {
	return s.client.Close()
}
