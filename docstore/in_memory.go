// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package docstore

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
	deepcopy "github.com/tiendc/go-deepcopy"

	"github.com/go-a2a/ads-video-agent/types"
)

// InMemoryService represents an in-memory implementation of the document store.
type InMemoryService struct {
	collections map[string]map[string]map[string]any
	mu          sync.Mutex
}

var _ types.DocumentStore = (*InMemoryService)(nil)

// NewInMemoryService creates a new instance of [InMemoryService].
func NewInMemoryService() *InMemoryService {
	return &InMemoryService{
		collections: make(map[string]map[string]map[string]any),
	}
}

// Set implements [types.DocumentStore].
func (s *InMemoryService) Set(ctx context.Context, collection, documentID string, data map[string]any) error {
	stored, err := cloneDocument(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]any)
	}
	s.collections[collection][documentID] = stored
	return nil
}

// Add implements [types.DocumentStore].
func (s *InMemoryService) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.NewString()
	if err := s.Set(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

// Get implements [types.DocumentStore].
func (s *InMemoryService) Get(ctx context.Context, collection, documentID string) (map[string]any, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.collections[collection][documentID]
	if !ok {
		return nil, false, nil
	}
	cloned, err := cloneDocument(data)
	if err != nil {
		return nil, false, err
	}
	return cloned, true, nil
}

// List implements [types.DocumentStore].
func (s *InMemoryService) List(ctx context.Context, collection string) ([]types.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := slices.Sorted(maps.Keys(s.collections[collection]))
	docs := make([]types.Document, 0, len(ids))
	for _, id := range ids {
		data, err := cloneDocument(s.collections[collection][id])
		if err != nil {
			return nil, err
		}
		docs = append(docs, types.Document{ID: id, Data: data})
	}
	return docs, nil
}

// Close implements [types.DocumentStore].
func (s *InMemoryService) Close() error {
	return nil
}

// cloneDocument deep-copies a document payload so stored documents never share
// nested maps or slices with the caller.
func cloneDocument(data map[string]any) (map[string]any, error) {
	if data == nil {
		return nil, nil
	}
	var cloned map[string]any
	if err := deepcopy.Copy(&cloned, data); err != nil {
		return nil, fmt.Errorf("copy document data: %w", err)
	}
	return cloned, nil
}
