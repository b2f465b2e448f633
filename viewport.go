// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"math"

	"github.com/gogpu/gg"
)

// DefaultPadding is the inset, in pixels, between the surface edge and the
// plot area of a line chart.
const DefaultPadding = 40

// StartAngle is the angle, in radians, at which the first donut segment
// begins. Zero points at 3 o'clock; angles grow clockwise on screen because
// pixel Y grows downward.
const StartAngle = 0.0

// Viewport describes the pixel dimensions and inset padding of the drawable
// area. It is rebuilt for every render pass.
type Viewport struct {
	Width   int
	Height  int
	Padding float64
}

// Empty reports whether the viewport has no drawable area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Center returns the center of the full surface.
func (v Viewport) Center() gg.Point {
	return gg.Pt(float64(v.Width)/2, float64(v.Height)/2)
}

// Clipped reports whether Padding leaves no room for a plot area along
// either axis.
func (v Viewport) Clipped() bool {
	return 2*v.Padding >= float64(min(v.Width, v.Height))
}

// insetX and insetY are Padding limited to half the surface extent, so the
// plot area shrinks to a line rather than turning inside out.
func (v Viewport) insetX() float64 { return clampInset(v.Padding, v.Width) }
func (v Viewport) insetY() float64 { return clampInset(v.Padding, v.Height) }

func clampInset(padding float64, extent int) float64 {
	if !(padding > 0) {
		return 0
	}
	return min(padding, float64(max(extent, 0))/2)
}

// PlotWidth returns the width of the inset plot area. It is never negative.
func (v Viewport) PlotWidth() float64 {
	return max(float64(v.Width)-2*v.insetX(), 0)
}

// PlotHeight returns the height of the inset plot area. It is never
// negative.
func (v Viewport) PlotHeight() float64 {
	return max(float64(v.Height)-2*v.insetY(), 0)
}

// Left, Right, Top and Bottom return the inset edges of the plot area.
func (v Viewport) Left() float64   { return v.insetX() }
func (v Viewport) Right() float64  { return float64(v.Width) - v.insetX() }
func (v Viewport) Top() float64    { return v.insetY() }
func (v Viewport) Bottom() float64 { return float64(v.Height) - v.insetY() }

// X maps the index of a point in a series of length n onto the horizontal
// pixel axis. Index 0 lands on the left inset edge and index n-1 on the
// right inset edge. A single point is centered.
func (v Viewport) X(index, n int) float64 {
	if n <= 1 {
		return v.Left() + v.PlotWidth()/2
	}
	if index == n-1 {
		return v.Right()
	}
	return v.Left() + float64(index)/float64(n-1)*v.PlotWidth()
}

// Y maps a value within d onto the vertical pixel axis. d.Min lands on the
// bottom inset edge and d.Max on the top inset edge.
func (v Viewport) Y(value float64, d Domain) float64 {
	if value == d.Max {
		return v.Top()
	}
	return v.Bottom() - d.Fraction(value)*v.PlotHeight()
}

// Map returns the pixel position of the point at index in a series of
// length n.
func (v Viewport) Map(index, n int, value float64, d Domain) gg.Point {
	return gg.Pt(v.X(index, n), v.Y(value, d))
}

// Angle maps a cumulative fraction of a total onto an angle in radians,
// measured from StartAngle.
func Angle(fraction float64) float64 {
	return StartAngle + fraction*2*math.Pi
}
