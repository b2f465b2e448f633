// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import "github.com/gogpu/gg"

// Surface is a write-only raster drawing target. Renderers only ever draw
// through this interface; the Controller owns sizing and clearing.
//
// Implementations in this module:
//   - raster.Surface draws with a gg.Context (CPU rasterizer)
//   - recording.Recorder captures calls as commands for inspection and replay
//   - gpucanvas.Surface draws into a ggcanvas.Canvas for GPU windows
//
// Surfaces are not safe for concurrent use.
type Surface interface {
	// Size returns the current pixel dimensions.
	Size() (width, height int)

	// Resize changes the pixel dimensions. Width and height are positive;
	// the Controller never resizes to an empty area.
	Resize(width, height int) error

	// Clear erases the whole surface to c.
	Clear(c gg.RGBA)

	// StrokePolyline strokes one connected line through points in order.
	StrokePolyline(points []gg.Point, style LineStyle)

	// FillCircle fills a disc.
	FillCircle(center gg.Point, radius float64, c gg.RGBA)

	// FillSector fills the pie slice between angles start and end (radians,
	// clockwise from 3 o'clock, end >= start).
	FillSector(center gg.Point, radius, start, end float64, c gg.RGBA)

	// DrawText draws s anchored at the given point.
	DrawText(s string, at gg.Point, style TextStyle)
}

// LineStyle describes a stroke.
type LineStyle struct {
	Color gg.RGBA
	Width float64
}

// TextStyle describes a text label. AnchorX and AnchorY position the label
// relative to its point as fractions of the measured text size, the same
// way gg.Context.DrawStringAnchored does: AnchorX 0 starts the text at the
// point, 0.5 centers it and 1 right-aligns it; AnchorY 0 puts the baseline
// on the point and 0.5 roughly centers the text vertically.
type TextStyle struct {
	Color   gg.RGBA
	Size    float64
	Bold    bool
	AnchorX float64
	AnchorY float64
}
