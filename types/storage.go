// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"context"
)

// BlobStorage abstracts the remote blob store holding video objects.
//
// Authentication and transport are the implementation's concern; callers only
// address objects through [ObjectRef] values.
type BlobStorage interface {
	// Download copies the remote object to localPath, creating parent
	// directories as needed.
	Download(ctx context.Context, ref ObjectRef, localPath string) error

	// Upload publishes the file at localPath as the remote object ref.
	Upload(ctx context.Context, localPath string, ref ObjectRef, contentType string) error

	// Close releases the underlying client.
	Close() error
}
