// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"fmt"
	"io"
)

// Chart is chart data bound to a renderer. Implementations draw onto an
// already cleared surface and report what they did.
type Chart interface {
	Render(s Surface, v Viewport, th Theme) Status
}

// ChartFunc adapts a function to the Chart interface.
type ChartFunc func(s Surface, v Viewport, th Theme) Status

// Render calls f(s, v, th).
func (f ChartFunc) Render(s Surface, v Viewport, th Theme) Status { return f(s, v, th) }

// State is the lifecycle state of a Controller.
type State uint8

const (
	// StateIdle means no sized surface has been painted.
	StateIdle State = iota

	// StateRendered means the surface is sized to the container and was
	// cleared and painted by the last pass.
	StateRendered
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRendered:
		return "Rendered"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Controller owns a Surface for its lifetime and keeps it consistent with
// the container size, the bound chart and the theme. Every change triggers
// a synchronous clear-and-redraw pass.
//
// A container without area keeps the Controller Idle and the surface
// untouched. Controller is not safe for concurrent use.
type Controller struct {
	surface Surface
	chart   Chart
	theme   Theme
	padding float64

	width  int
	height int

	state  State
	last   Status
	closed bool
}

// NewController creates a Controller drawing onto s. The controller starts
// Idle with a zero container size; call Resize to mount it.
func NewController(s Surface, opts ...ControllerOption) *Controller {
	o := defaultControllerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller{
		surface: s,
		chart:   o.chart,
		theme:   o.theme,
		padding: o.padding,
		last:    StatusZeroSize,
	}
}

// Resize records the container's measured size and redraws.
// Negative dimensions are treated as zero.
func (c *Controller) Resize(width, height int) Status {
	if c.closed {
		return StatusClosed
	}
	c.width, c.height = max(width, 0), max(height, 0)
	return c.Redraw()
}

// SetChart binds new chart data and redraws.
func (c *Controller) SetChart(ch Chart) Status {
	if c.closed {
		return StatusClosed
	}
	c.chart = ch
	return c.Redraw()
}

// SetTheme switches the theme and redraws.
func (c *Controller) SetTheme(th Theme) Status {
	if c.closed {
		return StatusClosed
	}
	c.theme = th
	return c.Redraw()
}

// Redraw repeats the render pass for the current size, chart and theme:
// resize the surface if the container size changed, clear it to the theme
// background, and invoke the chart.
//
// The Controller enters StateRendered whenever the surface was cleared, even
// if the chart itself reported StatusEmpty.
func (c *Controller) Redraw() Status {
	if c.closed {
		return StatusClosed
	}
	c.last = c.redraw()
	return c.last
}

func (c *Controller) redraw() Status {
	if c.width <= 0 || c.height <= 0 {
		c.state = StateIdle
		return StatusZeroSize
	}

	if w, h := c.surface.Size(); w != c.width || h != c.height {
		if err := c.surface.Resize(c.width, c.height); err != nil {
			Logger().Error("ggchart: surface resize failed",
				"width", c.width, "height", c.height, "err", err)
			c.state = StateIdle
			return StatusFailed
		}
	}

	c.surface.Clear(c.theme.Background)
	c.state = StateRendered

	if c.chart == nil {
		return StatusEmpty
	}
	return c.chart.Render(c.surface, c.Viewport(), c.theme)
}

// Viewport returns the viewport of the current container size.
func (c *Controller) Viewport() Viewport {
	return Viewport{Width: c.width, Height: c.height, Padding: c.padding}
}

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// LastStatus returns the status of the most recent render pass.
func (c *Controller) LastStatus() Status { return c.last }

// Theme returns the active theme.
func (c *Controller) Theme() Theme { return c.theme }

// Surface returns the owned surface.
func (c *Controller) Surface() Surface { return c.surface }

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool { return c.closed }

// Close releases the surface if it implements io.Closer and returns the
// Controller to StateIdle. Subsequent calls report StatusClosed.
// Close is idempotent.
func (c *Controller) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.state = StateIdle
	c.last = StatusClosed
	if cl, ok := c.surface.(io.Closer); ok {
		if err := cl.Close(); err != nil {
			return fmt.Errorf("ggchart: close surface: %w", err)
		}
	}
	return nil
}
