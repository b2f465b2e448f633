// Package ggchart renders time/value line charts and proportional donut
// charts onto a raster surface.
//
// # Overview
//
// ggchart does its own coordinate mapping, axis and grid layout, and arc
// geometry. Pixels are produced by the gogpu/gg software rasterizer through
// the raster subpackage, or recorded as commands by the recording
// subpackage.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gg"
//		"github.com/gogpu/ggchart"
//		"github.com/gogpu/ggchart/raster"
//	)
//
//	surf := raster.New(0, 0)
//	defer surf.Close()
//
//	ctl := ggchart.NewController(surf, ggchart.WithChart(
//		ggchart.NewDonutChart([]ggchart.Category{
//			{Label: "Online", Value: 30, Color: gg.Hex("#10b981")},
//			{Label: "Offline", Value: 70, Color: gg.Hex("#ef4444")},
//		}),
//	))
//	ctl.Resize(300, 250)
//	surf.SavePNG("devices.png")
//
// # Lifecycle
//
// A Controller owns one Surface. Resize, SetChart and SetTheme each run a
// synchronous pass: resize the surface to the container, clear it to the
// theme background, and invoke the bound Chart. A container without area
// keeps the Controller Idle and the surface untouched.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left, Y increases down
//   - Line charts map point index to X and value to Y inside an inset
//     plot area
//   - Donut angles start at 3 o'clock and advance clockwise on screen
//
// # Errors
//
// Rendering never returns an error. Each pass reports a Status; skipped
// passes map to ErrEmptyInput or ErrZeroSizedSurface through Status.Err.
// Caller data problems are logged through the logger set with SetLogger.
package ggchart
