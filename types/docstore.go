// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"context"
)

// Document is a stored document together with its ID.
type Document struct {
	// ID is the document ID within its collection.
	ID string `json:"id"`

	// Data is the document body.
	Data map[string]any `json:"data"`
}

// DocumentStore abstracts the document database holding ad campaign metadata,
// generated tags and workflow records.
type DocumentStore interface {
	// Set writes data under the explicit documentID, overwriting any
	// existing document.
	Set(ctx context.Context, collection, documentID string, data map[string]any) error

	// Add writes data under a store-generated document ID and returns it.
	Add(ctx context.Context, collection string, data map[string]any) (string, error)

	// Get reads a single document. The returned bool reports existence.
	Get(ctx context.Context, collection, documentID string) (map[string]any, bool, error)

	// List reads all documents in a collection.
	List(ctx context.Context, collection string) ([]Document, error)

	// Close releases the underlying client.
	Close() error
}
