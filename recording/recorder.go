// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
)

// ErrInvalidSize is returned by Resize for non-positive dimensions.
var ErrInvalidSize = errors.New("recording: invalid size")

// Recorder captures ggchart.Surface calls as commands.
// Use FinishRecording to obtain an immutable Recording that can be replayed
// onto other surfaces.
//
// Example:
//
//	rec := recording.NewRecorder(300, 250)
//	ctl := ggchart.NewController(rec)
//	ctl.Resize(300, 250)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	closed        bool
}

var _ ggchart.Surface = (*Recorder)(nil)

// NewRecorder creates a new Recorder reporting the given dimensions.
// Zero dimensions are allowed; the Recorder is then resized by its
// Controller on first mount.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    max(width, 0),
		height:   max(height, 0),
		commands: make([]Command, 0, 64),
	}
}

// Size implements ggchart.Surface.
func (r *Recorder) Size() (width, height int) { return r.width, r.height }

// Width returns the current width.
func (r *Recorder) Width() int { return r.width }

// Height returns the current height.
func (r *Recorder) Height() int { return r.height }

// Resize implements ggchart.Surface.
func (r *Recorder) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	r.width, r.height = width, height
	r.commands = append(r.commands, ResizeCommand{Width: width, Height: height})
	return nil
}

// Clear implements ggchart.Surface.
func (r *Recorder) Clear(c gg.RGBA) {
	r.commands = append(r.commands, ClearCommand{Color: c})
}

// StrokePolyline implements ggchart.Surface. The points are copied.
func (r *Recorder) StrokePolyline(points []gg.Point, style ggchart.LineStyle) {
	r.commands = append(r.commands, PolylineCommand{Points: slices.Clone(points), Style: style})
}

// FillCircle implements ggchart.Surface.
func (r *Recorder) FillCircle(center gg.Point, radius float64, c gg.RGBA) {
	r.commands = append(r.commands, CircleCommand{Center: center, Radius: radius, Color: c})
}

// FillSector implements ggchart.Surface.
func (r *Recorder) FillSector(center gg.Point, radius, start, end float64, c gg.RGBA) {
	r.commands = append(r.commands, SectorCommand{
		Center: center, Radius: radius, Start: start, End: end, Color: c,
	})
}

// DrawText implements ggchart.Surface.
func (r *Recorder) DrawText(s string, at gg.Point, style ggchart.TextStyle) {
	r.commands = append(r.commands, TextCommand{Text: s, At: at, Style: style})
}

// Commands returns the recorded commands. The slice is shared with the
// Recorder until the next call that records.
func (r *Recorder) Commands() []Command { return r.commands }

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Count returns the number of recorded commands of type t.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// DrawCalls returns the number of recorded commands that paint pixels,
// that is everything except Resize.
func (r *Recorder) DrawCalls() int {
	return len(r.commands) - r.Count(CmdResize)
}

// Reset discards all recorded commands. The size is kept.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Close marks the recorder closed. Recorded commands stay readable.
func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (r *Recorder) Closed() bool { return r.closed }

// FinishRecording returns an immutable Recording of the commands recorded
// so far. The Recorder can keep recording afterwards.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: slices.Clone(r.commands),
	}
}

// Recording is an immutable sequence of recorded commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recording.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Playback replays the recording onto dst. dst is first resized to the
// recording's size when they differ.
func (r *Recording) Playback(dst ggchart.Surface) error {
	if w, h := dst.Size(); (w != r.width || h != r.height) && r.width > 0 && r.height > 0 {
		if err := dst.Resize(r.width, r.height); err != nil {
			return fmt.Errorf("recording: playback resize: %w", err)
		}
	}
	for i, cmd := range r.commands {
		if err := apply(dst, cmd); err != nil {
			return fmt.Errorf("recording: playback command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}
