// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-a2a/ads-video-agent/types"
)

// InMemoryService represents an in-memory implementation of the blob storage.
type InMemoryService struct {
	objects map[types.ObjectRef][]byte
	mu      sync.Mutex
}

var _ types.BlobStorage = (*InMemoryService)(nil)

// NewInMemoryService creates a new instance of [InMemoryService].
func NewInMemoryService() *InMemoryService {
	return &InMemoryService{
		objects: make(map[types.ObjectRef][]byte),
	}
}

// Put stores data directly as the object ref, bypassing the local filesystem.
func (s *InMemoryService) Put(ref types.ObjectRef, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[ref] = data
}

// Object returns the stored bytes for ref. The returned bool reports existence.
func (s *InMemoryService) Object(ref types.ObjectRef) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.objects[ref]
	return data, ok
}

// Download implements [types.BlobStorage].
func (s *InMemoryService) Download(ctx context.Context, ref types.ObjectRef, localPath string) error {
	s.mu.Lock()
	data, ok := s.objects[ref]
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("object %s not found", ref)
	}
	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(localPath, data, 0o644)
}

// Upload implements [types.BlobStorage].
func (s *InMemoryService) Upload(ctx context.Context, localPath string, ref types.ObjectRef, contentType string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[ref] = data
	return nil
}

// Close implements [types.BlobStorage].
func (s *InMemoryService) Close() error {
	return nil
}
