// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package logging provides context-based structured logging utilities using Go's standard slog package.
//
// Loggers are stored in and retrieved from context.Context values so that the
// merge pipeline, tools and agent log through the same logger without plumbing
// it through every call.
//
// # Basic Usage
//
// Creating a logger context:
//
//	logger := logging.NewJSONLogger(os.Stderr, slog.LevelInfo)
//	ctx := logging.NewContext(ctx, logger)
//
// Retrieving the logger from context:
//
//	logger := logging.FromContext(ctx)
//	logger.Info("merge complete", slog.String("output", ref.String()))
//
// When no logger is found in the context, FromContext returns a default JSON
// logger writing to stderr at INFO level, so logging always works even when no
// explicit logger is configured.
package logging
