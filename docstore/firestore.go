// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package docstore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/go-a2a/ads-video-agent/types"
)

// FirestoreService represents a document store implementation using Cloud Firestore.
type FirestoreService struct {
	client *firestore.Client
}

var _ types.DocumentStore = (*FirestoreService)(nil)

// NewFirestoreService creates a new [FirestoreService] for the given project
// and database ID. An empty database ID selects the project's default database.
func NewFirestoreService(ctx context.Context, projectID, databaseID string) (*FirestoreService, error) {
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}

	return &FirestoreService{
		client: client,
	}, nil
}

// Set implements [types.DocumentStore].
func (s *FirestoreService) Set(ctx context.Context, collection, documentID string, data map[string]any) error {
	if _, err := s.client.Collection(collection).Doc(documentID).Set(ctx, data); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, documentID, err)
	}
	return nil
}

// Add implements [types.DocumentStore].
func (s *FirestoreService) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("add to %s: %w", collection, err)
	}
	return ref.ID, nil
}

// Get implements [types.DocumentStore].
func (s *FirestoreService) Get(ctx context.Context, collection, documentID string) (map[string]any, bool, error) {
	snap, err := s.client.Collection(collection).Doc(documentID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %s/%s: %w", collection, documentID, err)
	}
	return snap.Data(), true, nil
}

// List implements [types.DocumentStore].
func (s *FirestoreService) List(ctx context.Context, collection string) ([]types.Document, error) {
	it := s.client.Collection(collection).Documents(ctx)
	defer it.Stop()

	var docs []types.Document
	for {
		snap, err := it.Next()
		if err != nil {
			if errors.Is(err, iterator.Done) {
				break
			}
			return nil, fmt.Errorf("list %s: %w", collection, err)
		}
		docs = append(docs, types.Document{
			ID:   snap.Ref.ID,
			Data: snap.Data(),
		})
	}

	return docs, nil
}

// Close implements [types.DocumentStore].
func (s *FirestoreService) Close() error {
	return s.client.Close()
}
