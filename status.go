// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import "errors"

// Sentinel errors describing why a render pass drew nothing. They are never
// returned by render calls; use Status.Err to obtain them.
var (
	// ErrEmptyInput reports zero points or a zero total magnitude.
	ErrEmptyInput = errors.New("ggchart: empty input")

	// ErrZeroSizedSurface reports a container without measurable area.
	ErrZeroSizedSurface = errors.New("ggchart: zero-sized surface")

	// ErrClosed reports use of a closed Controller.
	ErrClosed = errors.New("ggchart: controller closed")

	// ErrSurface reports a surface that failed to resize.
	ErrSurface = errors.New("ggchart: surface failure")
)

// Status is the outcome of a render pass.
type Status uint8

const (
	// StatusRendered means the chart was painted.
	StatusRendered Status = iota

	// StatusEmpty means the input held nothing to draw; nothing was drawn.
	StatusEmpty

	// StatusZeroSize means the surface had no area; nothing was drawn.
	StatusZeroSize

	// StatusClosed means the Controller was closed before the call.
	StatusClosed

	// StatusFailed means the surface could not be prepared. The failure is
	// logged and the Controller stays Idle.
	StatusFailed
)

var statusNames = [...]string{
	StatusRendered: "rendered",
	StatusEmpty:    "skipped (empty input)",
	StatusZeroSize: "skipped (zero-sized surface)",
	StatusClosed:   "closed",
	StatusFailed:   "failed",
}

// String returns the status name.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Drawn reports whether the chart itself was painted.
func (s Status) Drawn() bool { return s == StatusRendered }

// Err maps the status to its sentinel error, or nil for StatusRendered.
func (s Status) Err() error {
	switch s {
	case StatusRendered:
		return nil
	case StatusEmpty:
		return ErrEmptyInput
	case StatusZeroSize:
		return ErrZeroSizedSurface
	case StatusClosed:
		return ErrClosed
	default:
		return ErrSurface
	}
}
