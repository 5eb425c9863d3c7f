// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package docstore provides document database backends for ad campaign data:
// product records, generated tags and workflow results.
//
// The package implements the [types.DocumentStore] interface with two backends:
//
//   - FirestoreService: Cloud Firestore backend for production
//   - InMemoryService: map-backed store for development and testing
package docstore
