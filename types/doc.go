// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package types defines the shared types and interfaces of the ads video agent:
// remote object references, the blob storage and video codec collaborator
// interfaces, the document store, the tool contract, and the merge pipeline's
// error taxonomy.
package types
