// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import "github.com/gogpu/gg"

// Theme is the resolved color set a render pass paints with. The caller
// decides which theme is active; ggchart never inspects ambient state.
type Theme struct {
	// Background erases the surface and fills the donut cutout.
	Background gg.RGBA
	// Foreground colors the donut center labels.
	Foreground gg.RGBA
	// Axis colors the plot axes.
	Axis gg.RGBA
	// Grid colors the horizontal grid lines.
	Grid gg.RGBA
	// Label colors axis tick labels.
	Label gg.RGBA
}

// LightTheme returns the slate palette used on light backgrounds.
func LightTheme() Theme {
	return Theme{
		Background: gg.Hex("#f8fafc"),
		Foreground: gg.Hex("#0f172a"),
		Axis:       gg.Hex("#cbd5e1"),
		Grid:       gg.Hex("#e2e8f0"),
		Label:      gg.Hex("#64748b"),
	}
}

// DarkTheme returns the slate palette used on dark backgrounds.
func DarkTheme() Theme {
	return Theme{
		Background: gg.Hex("#0f172a"),
		Foreground: gg.Hex("#f8fafc"),
		Axis:       gg.Hex("#475569"),
		Grid:       gg.Hex("#334155"),
		Label:      gg.Hex("#94a3b8"),
	}
}

// ThemeByName resolves "light" or "dark". Any other name yields the light
// theme and false.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "light":
		return LightTheme(), true
	case "dark":
		return DarkTheme(), true
	default:
		return LightTheme(), false
	}
}
