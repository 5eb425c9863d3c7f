// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package adsvideo_test

import (
	"testing"

	adsvideo "github.com/go-a2a/ads-video-agent"
)

func TestConfigValidate(t *testing.T) {
	valid := adsvideo.Config{
		ProjectID:  "demo-project",
		Location:   "us-central1",
		BucketName: "ads-assets",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	for name, cfg := range map[string]adsvideo.Config{
		"missing project":  {Location: "us-central1", BucketName: "ads-assets"},
		"missing location": {ProjectID: "demo-project", BucketName: "ads-assets"},
		"missing bucket":   {ProjectID: "demo-project", Location: "us-central1"},
	} {
		t.Run(name, func(t *testing.T) {
			if err := cfg.Validate(); err == nil {
				t.Error("Validate: expected error")
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(adsvideo.EnvGoogleCloudProject, "demo-project")
	t.Setenv(adsvideo.EnvGoogleCloudRegion, "")
	t.Setenv(adsvideo.EnvGCSBucketName, "ads-assets")
	t.Setenv(adsvideo.EnvFirestoreDatabase, "ads-db")

	cfg, err := adsvideo.ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.ProjectID != "demo-project" || cfg.BucketName != "ads-assets" || cfg.FirestoreDatabase != "ads-db" {
		t.Errorf("ConfigFromEnv = %+v", cfg)
	}
	if cfg.Location != "us-central1" {
		t.Errorf("Location default = %q, want us-central1", cfg.Location)
	}
}
