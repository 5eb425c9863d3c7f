// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"
	"strings"
)

// GCSScheme is the URI scheme of Google Cloud Storage object references.
const GCSScheme = "gs"

// ObjectRef identifies a single object in a remote blob store.
type ObjectRef struct {
	// Bucket is the bucket name.
	Bucket string

	// Key is the object path within the bucket.
	Key string
}

// ParseObjectRef parses a "gs://bucket/key" URI into an [ObjectRef].
//
// The URI must carry both a bucket and a non-empty key.
func ParseObjectRef(uri string) (ObjectRef, error) {
	rest, ok := strings.CutPrefix(uri, GCSScheme+"://")
	if !ok {
		return ObjectRef{}, fmt.Errorf("object reference %q: missing %q scheme", uri, GCSScheme)
	}

	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return ObjectRef{}, fmt.Errorf("object reference %q: want %s://bucket/key", uri, GCSScheme)
	}

	return ObjectRef{Bucket: bucket, Key: key}, nil
}

// String returns the "gs://bucket/key" form of the reference.
func (r ObjectRef) String() string {
	return fmt.Sprintf("%s://%s/%s", GCSScheme, r.Bucket, r.Key)
}

// IsZero reports whether the reference is empty.
func (r ObjectRef) IsZero() bool {
	return r.Bucket == "" && r.Key == ""
}
