// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"strconv"
	"time"
)

const (
	// DefaultGridDivisions is the number of equal bands the value axis is
	// split into. It yields DefaultGridDivisions-1 interior grid lines and
	// DefaultGridDivisions+1 value labels.
	DefaultGridDivisions = 5

	// DefaultMaxTimeLabels caps the number of time axis labels regardless
	// of series length.
	DefaultMaxTimeLabels = 6

	// timeLabelLayout renders time ticks as local hour:minute.
	timeLabelLayout = "15:04"
)

// Tick is one labelled position on an axis. Pos is the pixel coordinate
// along the axis (Y for value ticks, X for time ticks).
type Tick struct {
	Pos   float64
	Index int
	Value float64
	Label string
}

// GridLines returns the Y pixel positions of the interior horizontal grid
// lines splitting the plot area into divisions equal bands.
func GridLines(v Viewport, divisions int) []float64 {
	if divisions < 1 {
		return nil
	}
	lines := make([]float64, 0, divisions-1)
	for i := 1; i < divisions; i++ {
		lines = append(lines, v.Top()+v.PlotHeight()*float64(i)/float64(divisions))
	}
	return lines
}

// ValueTicks returns divisions+1 evenly spaced ticks from d.Min (bottom) to
// d.Max (top), labelled with one decimal place.
func ValueTicks(d Domain, v Viewport, divisions int) []Tick {
	if divisions < 1 {
		return nil
	}
	ticks := make([]Tick, 0, divisions+1)
	for i := 0; i <= divisions; i++ {
		f := float64(i) / float64(divisions)
		value := d.At(f)
		if i == divisions {
			value = d.Max
		}
		ticks = append(ticks, Tick{
			Pos:   v.Bottom() - f*v.PlotHeight(),
			Index: i,
			Value: value,
			Label: FormatValue(value),
		})
	}
	return ticks
}

// TimeTickIndices returns at most maxLabels point indices, evenly spaced over
// a series of length n, always including the first and last index when
// more than one label fits.
func TimeTickIndices(n, maxLabels int) []int {
	count := min(maxLabels, n)
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []int{0}
	}
	idx := make([]int, 0, count)
	for i := 0; i < count; i++ {
		idx = append(idx, i*(n-1)/(count-1))
	}
	return idx
}

// TimeTicks returns the labelled ticks of the time axis for points. Labels of
// timestamped points are rendered as hour:minute in loc (time.Local when
// nil); ordinal points use their Label, or their 1-based index.
func TimeTicks(points []SeriesPoint, v Viewport, maxLabels int, loc *time.Location) []Tick {
	indices := TimeTickIndices(len(points), maxLabels)
	if len(indices) == 0 {
		return nil
	}
	ticks := make([]Tick, 0, len(indices))
	for _, i := range indices {
		ticks = append(ticks, Tick{
			Pos:   v.X(i, len(points)),
			Index: i,
			Value: points[i].Value,
			Label: FormatPosition(points[i], i, loc),
		})
	}
	return ticks
}

// FormatValue renders a value axis label with one decimal place.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatPosition renders the time axis label of the point at index.
func FormatPosition(p SeriesPoint, index int, loc *time.Location) string {
	if !p.Time.IsZero() {
		if loc == nil {
			loc = time.Local
		}
		return p.Time.In(loc).Format(timeLabelLayout)
	}
	if p.Label != "" {
		return p.Label
	}
	return strconv.Itoa(index + 1)
}
