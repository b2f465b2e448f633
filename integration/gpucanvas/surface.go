// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpucanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/raster"
)

// Surface is a ggchart.Surface drawing into a ggcanvas.Canvas.
type Surface struct {
	canvas *ggcanvas.Canvas
	inner  *raster.Surface
	frames int
}

var _ ggchart.Surface = (*Surface)(nil)

// New creates a Surface bound to a GPU device provider. The initial size
// must be positive; a Controller resizes the surface to its container on
// the first pass.
func New(provider gpucontext.DeviceProvider, width, height int, opts ...raster.Option) (*Surface, error) {
	c, err := ggcanvas.New(provider, width, height)
	if err != nil {
		return nil, fmt.Errorf("gpucanvas: %w", err)
	}
	return &Surface{
		canvas: c,
		inner:  raster.NewForContext(c.Context(), opts...),
	}, nil
}

// Canvas returns the underlying canvas.
func (s *Surface) Canvas() *ggcanvas.Canvas { return s.canvas }

// Size implements ggchart.Surface.
func (s *Surface) Size() (width, height int) { return s.canvas.Size() }

// Resize implements ggchart.Surface. The canvas reallocates its texture on
// the next upload.
func (s *Surface) Resize(width, height int) error {
	if err := s.canvas.Resize(width, height); err != nil {
		return fmt.Errorf("gpucanvas: %w", err)
	}
	return s.inner.Resize(width, height)
}

// Clear implements ggchart.Surface. Clear starts a new frame.
func (s *Surface) Clear(c gg.RGBA) {
	s.inner.Clear(c)
	s.frames++
	s.canvas.MarkDirty()
}

// StrokePolyline implements ggchart.Surface.
func (s *Surface) StrokePolyline(points []gg.Point, style ggchart.LineStyle) {
	s.inner.StrokePolyline(points, style)
	s.canvas.MarkDirty()
}

// FillCircle implements ggchart.Surface.
func (s *Surface) FillCircle(center gg.Point, radius float64, c gg.RGBA) {
	s.inner.FillCircle(center, radius, c)
	s.canvas.MarkDirty()
}

// FillSector implements ggchart.Surface.
func (s *Surface) FillSector(center gg.Point, radius, start, end float64, c gg.RGBA) {
	s.inner.FillSector(center, radius, start, end, c)
	s.canvas.MarkDirty()
}

// DrawText implements ggchart.Surface.
func (s *Surface) DrawText(str string, at gg.Point, style ggchart.TextStyle) {
	s.inner.DrawText(str, at, style)
	s.canvas.MarkDirty()
}

// Frames returns the number of frames started since creation.
func (s *Surface) Frames() int { return s.frames }

// Dirty reports whether the canvas holds pixels not yet uploaded.
func (s *Surface) Dirty() bool { return s.canvas.IsDirty() }

// RenderTo uploads pending pixels and draws the chart texture at the
// window origin.
func (s *Surface) RenderTo(dc gpucontext.TextureDrawer) error {
	if err := s.canvas.RenderTo(dc); err != nil {
		return fmt.Errorf("gpucanvas: render: %w", err)
	}
	return nil
}

// Close releases the fonts and the canvas with its GPU textures.
func (s *Surface) Close() error {
	return errors.Join(s.inner.Close(), s.canvas.Close())
}
