// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCaption is the text drawn beneath the donut total.
const DefaultCaption = "Devices"

// Segment is the angular extent of one category on the donut, in radians.
// Start of every segment equals End of the previous one.
type Segment struct {
	Category Category
	Start    float64
	End      float64
}

// Sweep returns End - Start.
func (s Segment) Sweep() float64 { return s.End - s.Start }

// magnitude returns the drawable value of c. Negative and non-finite values
// count as zero.
func magnitude(c Category) float64 {
	if !finite(c.Value) || c.Value < 0 {
		return 0
	}
	return c.Value
}

// Total returns the sum of the drawable values of categories.
func Total(categories []Category) float64 {
	var total float64
	for _, c := range categories {
		total += magnitude(c)
	}
	return total
}

// normalized returns the drawable values of categories and their sum. When
// the plain sum overflows, every value is divided by the largest one first;
// ratios between values are unchanged.
func normalized(categories []Category) ([]float64, float64) {
	vals := make([]float64, len(categories))
	var sum, peak float64
	for i, c := range categories {
		vals[i] = magnitude(c)
		sum += vals[i]
		peak = max(peak, vals[i])
	}
	if finite(sum) {
		return vals, sum
	}
	sum = 0
	for i := range vals {
		vals[i] /= peak
		sum += vals[i]
	}
	return vals, sum
}

// Segments walks categories in order and returns their cumulative angular
// extents together with the total. Angles are derived from the cumulative
// sum rather than by adding per-segment sweeps, so no rounding drift builds
// up and the last segment ends at exactly StartAngle + 2π.
//
// The total is +Inf when the values do not sum to a finite float64; the
// angles stay proportional to the values in that case.
//
// When the total is zero Segments returns nil and 0.
func Segments(categories []Category) ([]Segment, float64) {
	vals, sum := normalized(categories)
	if sum == 0 {
		return nil, 0
	}
	segs := make([]Segment, len(categories))
	var cum float64
	start := StartAngle
	for i, c := range categories {
		cum += vals[i]
		end := Angle(cum / sum)
		if i == len(categories)-1 {
			end = Angle(1)
		}
		segs[i] = Segment{Category: c, Start: start, End: end}
		start = end
	}
	return segs, Total(categories)
}

// Percent returns value as a whole percentage of total, rounded half up.
// Percentages of a category set are rounded independently and need not add
// up to 100.
func Percent(value, total float64) int {
	if total <= 0 || !finite(value) || value < 0 {
		return 0
	}
	return int(math.Round(value / total * 100))
}

// LegendEntry is one row of the legend accompanying a donut chart.
type LegendEntry struct {
	Label   string
	Value   float64
	Percent int
	Color   gg.RGBA
}

// Legend returns one entry per category, in order.
func Legend(categories []Category) []LegendEntry {
	vals, sum := normalized(categories)
	entries := make([]LegendEntry, 0, len(categories))
	for i, c := range categories {
		entries = append(entries, LegendEntry{
			Label:   c.Label,
			Value:   c.Value,
			Percent: Percent(vals[i], sum),
			Color:   c.Color,
		})
	}
	return entries
}

// DonutRenderer draws categories as segments of an annulus with the total
// and a caption in its center.
type DonutRenderer struct {
	opts    donutOptions
	printer *message.Printer
}

// NewDonutRenderer creates a DonutRenderer with the given options.
func NewDonutRenderer(opts ...DonutOption) *DonutRenderer {
	o := defaultDonutOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &DonutRenderer{opts: o, printer: message.NewPrinter(o.lang)}
}

// FormatTotal renders total in the renderer's locale with grouping
// separators and at most two fraction digits.
func (r *DonutRenderer) FormatTotal(total float64) string {
	return r.printer.Sprint(number.Decimal(total, number.MaxFractionDigits(2)))
}

// Radii returns the outer and cutout radii for a viewport.
func (r *DonutRenderer) Radii(v Viewport) (outer, inner float64) {
	c := v.Center()
	outer = min(c.X, c.Y) * r.opts.outerRatio
	return outer, outer * r.opts.innerRatio
}

// Render draws categories onto s. A zero total draws nothing and returns
// StatusEmpty. A total too large for a float64 is not labelled.
func (r *DonutRenderer) Render(s Surface, v Viewport, th Theme, categories ...Category) Status {
	for _, c := range categories {
		if magnitude(c) != c.Value {
			Logger().Warn("ggchart: category value treated as zero",
				"category", c.Label, "value", c.Value)
		}
	}

	segs, total := Segments(categories)
	if total == 0 {
		Logger().Debug("ggchart: donut chart has zero total", "categories", len(categories))
		return StatusEmpty
	}
	if v.Empty() {
		return StatusZeroSize
	}

	center := v.Center()
	outer, inner := r.Radii(v)
	for _, sg := range segs {
		if sg.Sweep() <= 0 {
			continue
		}
		s.FillSector(center, outer, sg.Start, sg.End, categoryColor(sg.Category))
		if inner > 0 {
			s.FillCircle(center, inner, th.Background)
		}
	}

	if finite(total) {
		s.DrawText(r.FormatTotal(total), gg.Pt(center.X, center.Y-10), TextStyle{
			Color:   th.Foreground,
			Size:    r.opts.totalSize,
			Bold:    true,
			AnchorX: 0.5,
			AnchorY: 0.5,
		})
	} else {
		Logger().Warn("ggchart: donut total overflows, omitting total label",
			"categories", len(categories))
	}
	if r.opts.caption != "" {
		s.DrawText(r.opts.caption, gg.Pt(center.X, center.Y+15), TextStyle{
			Color:   th.Foreground,
			Size:    r.opts.captionSize,
			AnchorX: 0.5,
			AnchorY: 0.5,
		})
	}
	return StatusRendered
}

func categoryColor(c Category) gg.RGBA {
	if c.Color == (gg.RGBA{}) {
		return DefaultSeriesColor
	}
	return c.Color
}

// DonutChart binds categories to a DonutRenderer so a Controller can redraw
// it.
type DonutChart struct {
	Renderer   *DonutRenderer
	Categories []Category
}

// NewDonutChart returns a DonutChart drawing categories with a renderer built
// from opts.
func NewDonutChart(categories []Category, opts ...DonutOption) *DonutChart {
	return &DonutChart{Renderer: NewDonutRenderer(opts...), Categories: categories}
}

// Render implements Chart.
func (c *DonutChart) Render(s Surface, v Viewport, th Theme) Status {
	r := c.Renderer
	if r == nil {
		r = NewDonutRenderer()
	}
	return r.Render(s, v, th, c.Categories...)
}
