// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards every record. Enabled reports
// false so callers skip attribute construction entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by ggchart and its sub-packages.
// By default ggchart is silent. Pass nil to restore the silent default.
//
// Log levels used by ggchart:
//   - [slog.LevelDebug]: recovered edge cases (flat domains, skipped renders)
//   - [slog.LevelWarn]: caller data problems (non-finite values, negative
//     magnitudes, series of unequal length)
//   - [slog.LevelError]: surface failures (resize errors)
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (raster, recording,
// gpucanvas) call it so that one SetLogger call configures all of them.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
