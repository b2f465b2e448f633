// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"time"

	"golang.org/x/text/language"
)

// LineOption configures a LineRenderer during creation.
//
// Example:
//
//	r := ggchart.NewLineRenderer(
//		ggchart.WithGridDivisions(4),
//		ggchart.WithLocation(time.UTC),
//	)
type LineOption func(*lineOptions)

// lineOptions holds the geometry and typography of a line chart.
type lineOptions struct {
	padding       float64
	hasPadding    bool
	domainPadding float64
	divisions     int
	maxTimeLabels int
	lineWidth     float64
	axisWidth     float64
	gridWidth     float64
	markerRadius  float64
	labelSize     float64
	location      *time.Location
}

// defaultLineOptions returns the default line chart options.
func defaultLineOptions() lineOptions {
	return lineOptions{
		domainPadding: DefaultDomainPadding,
		divisions:     DefaultGridDivisions,
		maxTimeLabels: DefaultMaxTimeLabels,
		lineWidth:     2,
		axisWidth:     1,
		gridWidth:     0.5,
		markerRadius:  3,
		labelSize:     10,
		location:      time.Local,
	}
}

// WithPadding overrides the inset padding of the Viewport passed to Render.
// Negative values are ignored.
func WithPadding(px float64) LineOption {
	return func(o *lineOptions) {
		if px >= 0 {
			o.padding = px
			o.hasPadding = true
		}
	}
}

// WithDomainPadding sets the fraction by which the value domain is expanded
// beyond the data. Negative values are treated as zero.
func WithDomainPadding(f float64) LineOption {
	return func(o *lineOptions) {
		o.domainPadding = max(f, 0)
	}
}

// WithGridDivisions sets the number of equal bands of the value axis.
func WithGridDivisions(n int) LineOption {
	return func(o *lineOptions) {
		if n > 0 {
			o.divisions = n
		}
	}
}

// WithMaxTimeLabels caps the number of labels on the time axis.
func WithMaxTimeLabels(n int) LineOption {
	return func(o *lineOptions) {
		if n > 0 {
			o.maxTimeLabels = n
		}
	}
}

// WithLineWidth sets the series stroke width.
func WithLineWidth(w float64) LineOption {
	return func(o *lineOptions) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithMarkerRadius sets the radius of point markers. Zero disables markers.
func WithMarkerRadius(r float64) LineOption {
	return func(o *lineOptions) {
		o.markerRadius = max(r, 0)
	}
}

// WithLocation sets the time zone used to format time axis labels.
func WithLocation(loc *time.Location) LineOption {
	return func(o *lineOptions) {
		if loc != nil {
			o.location = loc
		}
	}
}

// WithLabelSize sets the font size of axis labels.
func WithLabelSize(size float64) LineOption {
	return func(o *lineOptions) {
		if size > 0 {
			o.labelSize = size
		}
	}
}

// DonutOption configures a DonutRenderer during creation.
type DonutOption func(*donutOptions)

type donutOptions struct {
	caption     string
	outerRatio  float64
	innerRatio  float64
	lang        language.Tag
	totalSize   float64
	captionSize float64
}

func defaultDonutOptions() donutOptions {
	return donutOptions{
		caption:     DefaultCaption,
		outerRatio:  0.8,
		innerRatio:  0.6,
		lang:        language.English,
		totalSize:   24,
		captionSize: 14,
	}
}

// WithCaption sets the text drawn beneath the total. An empty caption is
// not drawn.
func WithCaption(s string) DonutOption {
	return func(o *donutOptions) {
		o.caption = s
	}
}

// WithOuterRatio sets the outer radius as a fraction of the smaller half
// dimension of the surface. Values outside (0, 1] are ignored.
func WithOuterRatio(f float64) DonutOption {
	return func(o *donutOptions) {
		if f > 0 && f <= 1 {
			o.outerRatio = f
		}
	}
}

// WithInnerRatio sets the cutout radius as a fraction of the outer radius.
// Zero draws a full pie. Values outside [0, 1) are ignored.
func WithInnerRatio(f float64) DonutOption {
	return func(o *donutOptions) {
		if f >= 0 && f < 1 {
			o.innerRatio = f
		}
	}
}

// WithLanguage sets the locale used to format the total.
func WithLanguage(tag language.Tag) DonutOption {
	return func(o *donutOptions) {
		o.lang = tag
	}
}

// WithTotalSize sets the font size of the total label.
func WithTotalSize(size float64) DonutOption {
	return func(o *donutOptions) {
		if size > 0 {
			o.totalSize = size
		}
	}
}

// WithCaptionSize sets the font size of the caption.
func WithCaptionSize(size float64) DonutOption {
	return func(o *donutOptions) {
		if size > 0 {
			o.captionSize = size
		}
	}
}

// ControllerOption configures a Controller during creation.
type ControllerOption func(*controllerOptions)

type controllerOptions struct {
	theme   Theme
	padding float64
	chart   Chart
}

func defaultControllerOptions() controllerOptions {
	return controllerOptions{
		theme:   LightTheme(),
		padding: DefaultPadding,
	}
}

// WithTheme sets the initial theme. The default is LightTheme.
func WithTheme(th Theme) ControllerOption {
	return func(o *controllerOptions) {
		o.theme = th
	}
}

// WithViewportPadding sets the inset padding of every Viewport the
// Controller builds. The default is DefaultPadding.
func WithViewportPadding(px float64) ControllerOption {
	return func(o *controllerOptions) {
		if px >= 0 {
			o.padding = px
		}
	}
}

// WithChart binds the initial chart.
func WithChart(c Chart) ControllerOption {
	return func(o *controllerOptions) {
		o.chart = c
	}
}
