// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"errors"
	"fmt"
)

// Phase identifies the merge pipeline phase in which a fatal error occurred.
type Phase string

const (
	// PhaseFetch covers download of the input objects.
	PhaseFetch Phase = "fetch"

	// PhaseDecode covers opening the downloaded files as video segments.
	PhaseDecode Phase = "decode"

	// PhaseEncode covers concatenation and encoding of the output file.
	PhaseEncode Phase = "encode"

	// PhaseUpload covers publication of the output object.
	PhaseUpload Phase = "upload"
)

// PipelineError is a fatal merge pipeline failure tagged with the phase that
// produced it. The first fatal error aborts the remaining phases; cleanup of
// local resources still runs and is never reported through this type.
type PipelineError struct {
	// Phase is the pipeline phase that failed.
	Phase Phase

	// Err is the underlying cause.
	Err error
}

// NewPipelineError returns a [PipelineError] wrapping err with the given phase.
func NewPipelineError(phase Phase, err error) *PipelineError {
	return &PipelineError{Phase: phase, Err: err}
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Phase, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// AsPipelineError extracts a [PipelineError] from err's chain, if any.
func AsPipelineError(err error) (*PipelineError, bool) {
	var perr *PipelineError
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}

// IsPhase reports whether err is a [PipelineError] from the given phase.
func IsPhase(err error, phase Phase) bool {
	perr, ok := AsPipelineError(err)
	return ok && perr.Phase == phase
}
