// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"google.golang.org/genai"

	"github.com/go-a2a/ads-video-agent/types"
)

// StoreDocumentTool writes a document into the document store.
type StoreDocumentTool struct {
	*Tool

	store types.DocumentStore
}

var _ types.Tool = (*StoreDocumentTool)(nil)

// NewStoreDocumentTool returns a new [StoreDocumentTool] backed by store.
func NewStoreDocumentTool(store types.DocumentStore) *StoreDocumentTool {
	return &StoreDocumentTool{
		Tool: NewTool(
			"store_data_in_firestore",
			"Stores data as a document in a Firestore collection (e.g. 'products', 'ad_campaigns', 'ad_tags'). When no document ID is given, one is generated.",
			&genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"collection_name": {
						Type:        genai.TypeString,
						Description: "The Firestore collection to write to.",
					},
					"document_data": {
						Type:        genai.TypeObject,
						Description: "The document body as key-value pairs.",
					},
					"document_id": {
						Type:        genai.TypeString,
						Description: "Optional explicit document ID; overwrites an existing document.",
					},
				},
				Required: []string{"collection_name", "document_data"},
			},
		),
		store: store,
	}
}

// Run implements [types.Tool].
func (t *StoreDocumentTool) Run(ctx context.Context, args map[string]any) (any, error) {
	a, err := decodeArgs[struct {
		CollectionName string         `json:"collection_name"`
		DocumentData   map[string]any `json:"document_data"`
		DocumentID     string         `json:"document_id"`
	}](args)
	if err != nil {
		return nil, err
	}

	documentID := a.DocumentID
	if documentID != "" {
		if err := t.store.Set(ctx, a.CollectionName, documentID, a.DocumentData); err != nil {
			return nil, err
		}
	} else {
		documentID, err = t.store.Add(ctx, a.CollectionName, a.DocumentData)
		if err != nil {
			return nil, err
		}
	}

	return map[string]any{
		"collection":  a.CollectionName,
		"document_id": documentID,
	}, nil
}

// ReadDocumentsTool reads one document or a whole collection from the document store.
type ReadDocumentsTool struct {
	*Tool

	store types.DocumentStore
}

var _ types.Tool = (*ReadDocumentsTool)(nil)

// NewReadDocumentsTool returns a new [ReadDocumentsTool] backed by store.
func NewReadDocumentsTool(store types.DocumentStore) *ReadDocumentsTool {
	return &ReadDocumentsTool{
		Tool: NewTool(
			"read_data_from_firestore",
			"Reads documents from a Firestore collection. With a document ID, reads that document; otherwise reads the whole collection. Returns the documents as JSON.",
			&genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"collection_name": {
						Type:        genai.TypeString,
						Description: "The Firestore collection to read from.",
					},
					"document_id": {
						Type:        genai.TypeString,
						Description: "Optional ID of the specific document to read.",
					},
				},
				Required: []string{"collection_name"},
			},
		),
		store: store,
	}
}

// Run implements [types.Tool].
func (t *ReadDocumentsTool) Run(ctx context.Context, args map[string]any) (any, error) {
	a, err := decodeArgs[struct {
		CollectionName string `json:"collection_name"`
		DocumentID     string `json:"document_id"`
	}](args)
	if err != nil {
		return nil, err
	}

	if a.DocumentID != "" {
		data, ok, err := t.store.Get(ctx, a.CollectionName, a.DocumentID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return map[string]any{
				"found": false,
			}, nil
		}
		body, err := sonic.ConfigFastest.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("marshal document: %w", err)
		}
		return map[string]any{
			"found":    true,
			"document": string(body),
		}, nil
	}

	docs, err := t.store.List(ctx, a.CollectionName)
	if err != nil {
		return nil, err
	}
	body, err := sonic.ConfigFastest.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("marshal documents: %w", err)
	}
	return map[string]any{
		"count":     len(docs),
		"documents": string(body),
	}, nil
}
