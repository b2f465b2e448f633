// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpucanvas draws charts into gogpu GPU-accelerated windows.
//
// Surface implements ggchart.Surface on top of a ggcanvas.Canvas. Drawing
// goes through the gg software rasterizer; every drawing call marks the
// canvas dirty so the next RenderTo uploads the new frame as a texture:
//
//	gg.Context (draw) -> Pixmap (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	surf, err := gpucanvas.New(app.GPUContextProvider(), 800, 600)
//	if err != nil {
//		return err
//	}
//	ctl := ggchart.NewController(surf, ggchart.WithChart(chart))
//	defer ctl.Close()
//
//	// On window resize:
//	ctl.Resize(w, h)
//
//	// On every frame:
//	surf.RenderTo(dc)
//
// # Thread Safety
//
// Surface is NOT safe for concurrent use. Drive it from the window's
// event goroutine.
package gpucanvas
