// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package storage provides blob storage backends for remote video objects.
//
// The package implements the [types.BlobStorage] interface with two backends:
//
//   - GCSService: Google Cloud Storage backend for production
//   - InMemoryService: map-backed storage for development and testing
//
// Both backends address objects through [types.ObjectRef] values; credentials
// and transport are handled internally by the GCS client.
package storage
