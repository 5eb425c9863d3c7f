// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package adsvideo

import (
	"fmt"
	"os"
)

// Environment variable names read by [ConfigFromEnv].
const (
	EnvGoogleCloudProject = "GOOGLE_CLOUD_PROJECT"
	EnvGoogleCloudRegion  = "GOOGLE_CLOUD_LOCATION"
	EnvGCSBucketName      = "GCS_BUCKET_NAME"
	EnvFirestoreDatabase  = "FIRESTORE_DATABASE_ID"
)

// Config carries the project-level settings shared by the agent's collaborators.
//
// The configuration is passed explicitly into constructors; no package in this
// module reads the environment or holds global client state.
type Config struct {
	// ProjectID is the Google Cloud project ID.
	ProjectID string

	// Location is the region used for Vertex AI calls (e.g. "us-central1").
	Location string

	// BucketName is the GCS bucket receiving generated media.
	BucketName string

	// FirestoreDatabase is the Firestore database ID for ad campaign documents.
	FirestoreDatabase string
}

// Validate reports the first missing required field.
func (c Config) Validate() error {
	switch {
	case c.ProjectID == "":
		return fmt.Errorf("config: ProjectID is required")
	case c.Location == "":
		return fmt.Errorf("config: Location is required")
	case c.BucketName == "":
		return fmt.Errorf("config: BucketName is required")
	}
	return nil
}

// ConfigFromEnv builds a [Config] from the process environment.
//
// Intended for command entry points only; library code takes a [Config] value.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		ProjectID:         os.Getenv(EnvGoogleCloudProject),
		Location:          os.Getenv(EnvGoogleCloudRegion),
		BucketName:        os.Getenv(EnvGCSBucketName),
		FirestoreDatabase: os.Getenv(EnvFirestoreDatabase),
	}
	if cfg.Location == "" {
		cfg.Location = "us-central1"
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
