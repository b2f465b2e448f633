// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one ggchart.Surface method.
type CommandType uint8

const (
	CmdResize   CommandType = iota // Resize the surface
	CmdClear                       // Erase the whole surface
	CmdPolyline                    // Stroke a polyline
	CmdCircle                      // Fill a circle
	CmdSector                      // Fill a pie sector
	CmdText                        // Draw a text label
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdResize:   "Resize",
	CmdClear:    "Clear",
	CmdPolyline: "Polyline",
	CmdCircle:   "Circle",
	CmdSector:   "Sector",
	CmdText:     "Text",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ResizeCommand records a successful Resize.
type ResizeCommand struct {
	Width, Height int
}

// Type implements Command.
func (ResizeCommand) Type() CommandType { return CmdResize }

// ClearCommand records a full-surface erase.
type ClearCommand struct {
	Color gg.RGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// PolylineCommand records a stroked polyline. Points is owned by the
// command.
type PolylineCommand struct {
	Points []gg.Point
	Style  ggchart.LineStyle
}

// Type implements Command.
func (PolylineCommand) Type() CommandType { return CmdPolyline }

// CircleCommand records a filled circle.
type CircleCommand struct {
	Center gg.Point
	Radius float64
	Color  gg.RGBA
}

// Type implements Command.
func (CircleCommand) Type() CommandType { return CmdCircle }

// SectorCommand records a filled pie sector.
type SectorCommand struct {
	Center     gg.Point
	Radius     float64
	Start, End float64
	Color      gg.RGBA
}

// Type implements Command.
func (SectorCommand) Type() CommandType { return CmdSector }

// Sweep returns End - Start.
func (c SectorCommand) Sweep() float64 { return c.End - c.Start }

// TextCommand records a text label.
type TextCommand struct {
	Text  string
	At    gg.Point
	Style ggchart.TextStyle
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }

// apply replays cmd onto dst.
func apply(dst ggchart.Surface, cmd Command) error {
	switch c := cmd.(type) {
	case ResizeCommand:
		return dst.Resize(c.Width, c.Height)
	case ClearCommand:
		dst.Clear(c.Color)
	case PolylineCommand:
		dst.StrokePolyline(c.Points, c.Style)
	case CircleCommand:
		dst.FillCircle(c.Center, c.Radius, c.Color)
	case SectorCommand:
		dst.FillSector(c.Center, c.Radius, c.Start, c.End, c.Color)
	case TextCommand:
		dst.DrawText(c.Text, c.At, c.Style)
	}
	return nil
}
