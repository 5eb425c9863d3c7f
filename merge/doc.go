// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package merge implements the video segment merge pipeline: download two
// remote video objects, concatenate them into one contiguous video, and
// publish the result back to remote storage.
//
// Each Merge call owns a uniquely named local workspace that is removed on
// every exit path; cleanup failures are logged and never mask the call's
// result. Fatal failures carry the pipeline phase that produced them as a
// [types.PipelineError], so callers can distinguish a missing input from a
// broken upload without string matching.
package merge
