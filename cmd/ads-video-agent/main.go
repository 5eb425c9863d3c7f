// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Command ads-video-agent runs the ads creative video agent as an interactive
// console session.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	adsvideo "github.com/go-a2a/ads-video-agent"
	"github.com/go-a2a/ads-video-agent/agent"
	"github.com/go-a2a/ads-video-agent/codec"
	"github.com/go-a2a/ads-video-agent/docstore"
	"github.com/go-a2a/ads-video-agent/genmedia"
	"github.com/go-a2a/ads-video-agent/merge"
	"github.com/go-a2a/ads-video-agent/pkg/logging"
	"github.com/go-a2a/ads-video-agent/storage"
)

var (
	modelName = flag.String("model", agent.DefaultModel, "Gemini model name driving the agent")
	verbose   = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewJSONLogger(os.Stderr, level)
	ctx := logging.NewContext(context.Background(), logger)

	if err := run(ctx); err != nil {
		logger.Error("agent stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := adsvideo.ConfigFromEnv()
	if err != nil {
		return err
	}

	blobs, err := storage.NewGCSService(ctx)
	if err != nil {
		return err
	}
	defer blobs.Close()

	docs, err := docstore.NewFirestoreService(ctx, cfg.ProjectID, cfg.FirestoreDatabase)
	if err != nil {
		return err
	}
	defer docs.Close()

	media, err := genmedia.NewService(ctx, cfg.ProjectID, cfg.Location, cfg.BucketName)
	if err != nil {
		return err
	}

	model, err := agent.NewGeminiModel(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return err
	}

	pipeline := merge.NewPipeline(blobs, codec.NewFFmpegCodec())
	root := agent.NewAdsCreativeVideoAgent(model, pipeline, media, media, docs, agent.WithModel(*modelName))

	fmt.Printf("%s ready. Describe the product to advertise.\n", root.Name())

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		prompt := scanner.Text()
		if prompt == "" {
			continue
		}

		reply, err := root.Run(ctx, prompt)
		if err != nil {
			return err
		}
		fmt.Println(reply)
	}
	return scanner.Err()
}
