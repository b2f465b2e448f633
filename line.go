// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import "github.com/gogpu/gg"

// LineRenderer draws one or more series as polylines with point markers
// over a value grid. A LineRenderer holds only configuration and may be
// reused for any number of render passes.
type LineRenderer struct {
	opts lineOptions
}

// NewLineRenderer creates a LineRenderer with the given options.
func NewLineRenderer(opts ...LineOption) *LineRenderer {
	o := defaultLineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &LineRenderer{opts: o}
}

// Render draws series onto s. All series share one Domain computed jointly
// and are mapped by point index against the longest series.
//
// Non-finite values are skipped: they break the polyline and get no marker.
// Render never clears s; the Controller does that before every pass.
func (r *LineRenderer) Render(s Surface, v Viewport, th Theme, series ...Series) Status {
	if r.opts.hasPadding {
		v.Padding = r.opts.padding
	}

	n := longest(series)
	d, ok := ComputeDomain(r.opts.domainPadding, series...)
	if n == 0 || !ok {
		Logger().Debug("ggchart: line chart has no finite points", "series", len(series))
		return StatusEmpty
	}
	if v.Empty() {
		return StatusZeroSize
	}
	if v.Clipped() {
		Logger().Warn("ggchart: padding leaves no plot area, clamping to surface",
			"padding", v.Padding, "width", v.Width, "height", v.Height)
	}
	if len(series) > 1 {
		warnMisaligned(series, n)
	}

	r.drawFrame(s, v, th)
	for i := range series {
		r.drawSeries(s, v, d, &series[i], n)
	}
	r.drawLabels(s, v, d, th, series)
	return StatusRendered
}

// drawFrame draws the axes and the interior grid lines.
func (r *LineRenderer) drawFrame(s Surface, v Viewport, th Theme) {
	s.StrokePolyline([]gg.Point{
		gg.Pt(v.Left(), v.Top()),
		gg.Pt(v.Left(), v.Bottom()),
		gg.Pt(v.Right(), v.Bottom()),
	}, LineStyle{Color: th.Axis, Width: r.opts.axisWidth})

	grid := LineStyle{Color: th.Grid, Width: r.opts.gridWidth}
	for _, y := range GridLines(v, r.opts.divisions) {
		s.StrokePolyline([]gg.Point{gg.Pt(v.Left(), y), gg.Pt(v.Right(), y)}, grid)
	}
}

func (r *LineRenderer) drawSeries(s Surface, v Viewport, d Domain, sr *Series, n int) {
	c := sr.color()
	style := LineStyle{Color: c, Width: r.opts.lineWidth}

	run := make([]gg.Point, 0, len(sr.Points))
	skipped := 0
	flush := func() {
		if len(run) >= 2 {
			s.StrokePolyline(run, style)
		}
		run = run[:0]
	}
	for i, p := range sr.Points {
		if !finite(p.Value) {
			skipped++
			flush()
			continue
		}
		run = append(run, v.Map(i, n, p.Value, d))
	}
	flush()

	if skipped > 0 {
		Logger().Warn("ggchart: skipped non-finite points",
			"series", sr.Name, "count", skipped)
	}
	if r.opts.markerRadius <= 0 {
		return
	}
	for i, p := range sr.Points {
		if finite(p.Value) {
			s.FillCircle(v.Map(i, n, p.Value, d), r.opts.markerRadius, c)
		}
	}
}

// drawLabels draws the time axis labels of the longest series below the
// plot and the value axis labels left of it.
func (r *LineRenderer) drawLabels(s Surface, v Viewport, d Domain, th Theme, series []Series) {
	ref := series[longestIndex(series)]
	below := TextStyle{Color: th.Label, Size: r.opts.labelSize, AnchorX: 0.5}
	for _, t := range TimeTicks(ref.Points, v, r.opts.maxTimeLabels, r.opts.location) {
		s.DrawText(t.Label, gg.Pt(t.Pos, v.Bottom()+15), below)
	}

	left := TextStyle{Color: th.Label, Size: r.opts.labelSize, AnchorX: 1}
	for _, t := range ValueTicks(d, v, r.opts.divisions) {
		s.DrawText(t.Label, gg.Pt(v.Left()-5, t.Pos+3), left)
	}
}

func longest(series []Series) int {
	n := 0
	for _, s := range series {
		n = max(n, s.Len())
	}
	return n
}

func longestIndex(series []Series) int {
	idx := 0
	for i, s := range series {
		if s.Len() > series[idx].Len() {
			idx = i
		}
	}
	return idx
}

func warnMisaligned(series []Series, n int) {
	for _, s := range series {
		if s.Len() != n {
			Logger().Warn("ggchart: series are not index-aligned",
				"series", s.Name, "points", s.Len(), "expected", n)
		}
	}
}

// LineChart binds series data to a LineRenderer so a Controller can redraw
// it. The series slice is read, never modified.
type LineChart struct {
	Renderer *LineRenderer
	Series   []Series
}

// NewLineChart returns a LineChart drawing series with a renderer built
// from opts.
func NewLineChart(series []Series, opts ...LineOption) *LineChart {
	return &LineChart{Renderer: NewLineRenderer(opts...), Series: series}
}

// Render implements Chart.
func (c *LineChart) Render(s Surface, v Viewport, th Theme) Status {
	r := c.Renderer
	if r == nil {
		r = NewLineRenderer()
	}
	return r.Render(s, v, th, c.Series...)
}
