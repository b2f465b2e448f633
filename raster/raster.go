// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster draws charts into pixels with the gg software rasterizer.
//
// Surface implements ggchart.Surface over a *gg.Context. Text is set in the
// embedded Go fonts. Importing the package registers the "raster" playback
// backend with the recording package:
//
//	surf := raster.New(300, 250)
//	defer surf.Close()
//	ctl := ggchart.NewController(surf, ggchart.WithChart(chart))
//	ctl.Resize(300, 250)
//	surf.SavePNG("chart.png")
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/recording"
)

// Errors returned by Surface.
var (
	// ErrClosed is returned when a closed surface is resized or encoded.
	ErrClosed = errors.New("raster: surface closed")

	// ErrEmpty is returned when encoding a surface that was never sized.
	ErrEmpty = errors.New("raster: surface has no pixels")
)

func init() {
	recording.Register("raster", func(width, height int) (ggchart.Surface, error) {
		return New(width, height), nil
	})
}

// Option configures a Surface.
type Option func(*Surface)

// WithFonts makes the surface draw text with shared fonts. The surface does
// not close them.
func WithFonts(f *Fonts) Option {
	return func(s *Surface) {
		s.fonts = f
		s.ownsFonts = false
	}
}

// Surface is a ggchart.Surface backed by a gg.Context.
//
// A zero-sized Surface allocates no context until the first Resize with
// positive dimensions. Surface is not safe for concurrent use.
type Surface struct {
	dc        *gg.Context
	ownsDC    bool
	width     int
	height    int
	fonts     *Fonts
	ownsFonts bool
	fontErr   error
	closed    bool
}

var _ ggchart.Surface = (*Surface)(nil)

// New creates a Surface of the given size. Non-positive sizes produce an
// unallocated surface.
func New(width, height int, opts ...Option) *Surface {
	s := &Surface{ownsDC: true, ownsFonts: true}
	for _, opt := range opts {
		opt(s)
	}
	if width > 0 && height > 0 {
		s.dc = gg.NewContext(width, height)
		s.width, s.height = width, height
	}
	return s
}

// NewForContext creates a Surface drawing into an existing context, such as
// the context of a GPU canvas. Resize resizes dc in place. Close does not
// close dc.
func NewForContext(dc *gg.Context, opts ...Option) *Surface {
	s := &Surface{dc: dc, ownsFonts: true, width: dc.Width(), height: dc.Height()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Size implements ggchart.Surface.
func (s *Surface) Size() (width, height int) { return s.width, s.height }

// Context returns the underlying context, or nil before the first
// positive Resize.
func (s *Surface) Context() *gg.Context { return s.dc }

// Resize implements ggchart.Surface.
func (s *Surface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid dimensions %dx%d", width, height)
	}
	if s.dc == nil {
		s.dc = gg.NewContext(width, height)
	} else if err := s.dc.Resize(width, height); err != nil {
		return fmt.Errorf("raster: resize: %w", err)
	}
	s.width, s.height = width, height
	return nil
}

func (s *Surface) ready() bool {
	return s.dc != nil && !s.closed
}

// Clear implements ggchart.Surface.
func (s *Surface) Clear(c gg.RGBA) {
	if !s.ready() {
		return
	}
	s.dc.ClearWithColor(c)
}

// StrokePolyline implements ggchart.Surface. Joins are round.
func (s *Surface) StrokePolyline(points []gg.Point, style ggchart.LineStyle) {
	if !s.ready() || len(points) < 2 {
		return
	}
	dc := s.dc
	dc.ClearPath()
	dc.SetColor(style.Color.Color())
	dc.SetLineWidth(style.Width)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	s.check("stroke", dc.Stroke())
}

// FillCircle implements ggchart.Surface.
func (s *Surface) FillCircle(center gg.Point, radius float64, c gg.RGBA) {
	if !s.ready() || radius <= 0 {
		return
	}
	s.dc.ClearPath()
	s.dc.SetColor(c.Color())
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.check("fill circle", s.dc.Fill())
}

// FillSector implements ggchart.Surface.
func (s *Surface) FillSector(center gg.Point, radius, start, end float64, c gg.RGBA) {
	if !s.ready() || radius <= 0 || end <= start {
		return
	}
	dc := s.dc
	dc.ClearPath()
	dc.SetColor(c.Color())
	dc.MoveTo(center.X, center.Y)
	dc.LineTo(center.X+radius*math.Cos(start), center.Y+radius*math.Sin(start))
	dc.DrawArc(center.X, center.Y, radius, start, end)
	dc.ClosePath()
	s.check("fill sector", dc.Fill())
}

// DrawText implements ggchart.Surface. Text is skipped when the fonts
// could not be loaded; the failure is logged once.
func (s *Surface) DrawText(str string, at gg.Point, style ggchart.TextStyle) {
	if !s.ready() || str == "" || !s.loadFonts() {
		return
	}
	s.dc.SetFont(s.fonts.Face(style.Size, style.Bold))
	s.dc.SetColor(style.Color.Color())
	s.dc.DrawStringAnchored(str, at.X, at.Y, style.AnchorX, style.AnchorY)
}

func (s *Surface) loadFonts() bool {
	if s.fonts != nil {
		return true
	}
	if s.fontErr != nil {
		return false
	}
	s.fonts, s.fontErr = LoadGoFonts()
	if s.fontErr != nil {
		ggchart.Logger().Error("raster: fonts unavailable, text is not drawn", "err", s.fontErr)
		return false
	}
	s.ownsFonts = true
	return true
}

func (s *Surface) check(op string, err error) {
	if err != nil {
		ggchart.Logger().Error("raster: draw failed", "op", op, "err", err)
	}
}

// Image returns the surface pixels, or nil before the first positive
// Resize.
func (s *Surface) Image() image.Image {
	if s.dc == nil {
		return nil
	}
	return s.dc.Image()
}

// EncodePNG writes the surface as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.closed {
		return ErrClosed
	}
	if s.dc == nil {
		return ErrEmpty
	}
	return s.dc.EncodePNG(w)
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if s.closed {
		return ErrClosed
	}
	if s.dc == nil {
		return ErrEmpty
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

// SaveToFile implements recording.FileBackend.
func (s *Surface) SaveToFile(path string) error { return s.SavePNG(path) }

// Close releases the context and any fonts the surface loaded itself.
// Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var errs []error
	if s.dc != nil && s.ownsDC {
		errs = append(errs, s.dc.Close())
	}
	if s.fonts != nil && s.ownsFonts {
		errs = append(errs, s.fonts.Close())
	}
	return errors.Join(errs...)
}
