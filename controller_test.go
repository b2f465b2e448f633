package ggchart_test

import (
	"errors"
	"image"
	"reflect"
	"testing"
	"time"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/raster"
	"github.com/gogpu/ggchart/recording"
)

func sampleLine() *ggchart.LineChart {
	return ggchart.NewLineChart([]ggchart.Series{timedSeries("temp", 10, 20, 15, 18, 12)},
		ggchart.WithLocation(time.UTC))
}

func sampleDonut() *ggchart.DonutChart {
	return ggchart.NewDonutChart([]ggchart.Category{
		{Label: "Desktop", Value: 30, Color: teal},
		{Label: "Mobile", Value: 70, Color: indigo},
	})
}

// brokenSurface records like a Recorder but refuses to resize.
type brokenSurface struct {
	*recording.Recorder
}

func (brokenSurface) Resize(int, int) error { return errors.New("device lost") }

// closeFailSurface records like a Recorder but fails to close.
type closeFailSurface struct {
	*recording.Recorder
}

var errCloseFailed = errors.New("release failed")

func (closeFailSurface) Close() error { return errCloseFailed }

func samePixels(t *testing.T, a, b image.Image) bool {
	t.Helper()
	if a == nil || b == nil {
		t.Fatal("missing image")
	}
	if a.Bounds() != b.Bounds() {
		t.Errorf("bounds %v != %v", a.Bounds(), b.Bounds())
		return false
	}
	r := a.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			ar, ag, ab, aa := a.At(x, y).RGBA()
			br, bg, bb, ba := b.At(x, y).RGBA()
			if ar != br || ag != bg || ab != bb || aa != ba {
				t.Errorf("pixel (%d,%d) differs", x, y)
				return false
			}
		}
	}
	return true
}

func newRasterController(t *testing.T, opts ...ggchart.ControllerOption) (*ggchart.Controller, *raster.Surface) {
	t.Helper()
	s := raster.New(0, 0)
	c := ggchart.NewController(s, opts...)
	t.Cleanup(func() { _ = c.Close() })
	return c, s
}

func TestControllerMountSequence(t *testing.T) {
	rec := recording.NewRecorder(0, 0)
	c := ggchart.NewController(rec, ggchart.WithChart(sampleLine()))

	if c.State() != ggchart.StateIdle {
		t.Fatalf("initial state = %v, want Idle", c.State())
	}

	if st := c.Resize(0, 0); st != ggchart.StatusZeroSize {
		t.Errorf("Resize(0, 0) = %v, want zero size", st)
	}
	if c.State() != ggchart.StateIdle {
		t.Errorf("state after 0x0 = %v, want Idle", c.State())
	}
	if rec.Len() != 0 {
		t.Fatalf("0x0 mount recorded %d commands, want 0", rec.Len())
	}

	if st := c.Resize(300, 250); st != ggchart.StatusRendered {
		t.Errorf("Resize(300, 250) = %v, want rendered", st)
	}
	if c.State() != ggchart.StateRendered {
		t.Errorf("state after 300x250 = %v, want Rendered", c.State())
	}
	cmds := rec.Commands()
	if r, ok := cmds[0].(recording.ResizeCommand); !ok || r.Width != 300 || r.Height != 250 {
		t.Errorf("first command = %#v, want resize to 300x250", cmds[0])
	}
	if cl, ok := cmds[1].(recording.ClearCommand); !ok || cl.Color != ggchart.LightTheme().Background {
		t.Errorf("second command = %#v, want clear to light background", cmds[1])
	}
	if w, h := rec.Size(); w != 300 || h != 250 {
		t.Errorf("surface size = %dx%d, want 300x250", w, h)
	}
}

func TestControllerLateSizingMatchesFreshMount(t *testing.T) {
	late, lateSurface := newRasterController(t, ggchart.WithChart(sampleLine()))
	late.Resize(0, 0)
	late.Resize(300, 250)

	fresh, freshSurface := newRasterController(t, ggchart.WithChart(sampleLine()))
	fresh.Resize(300, 250)

	samePixels(t, lateSurface.Image(), freshSurface.Image())
}

func TestControllerRedrawIsIdempotent(t *testing.T) {
	rec := recording.NewRecorder(0, 0)
	c := ggchart.NewController(rec, ggchart.WithChart(sampleDonut()))
	c.Resize(300, 250)

	rec.Reset()
	c.Redraw()
	first := rec.FinishRecording()

	rec.Reset()
	c.Redraw()
	second := rec.FinishRecording()

	if !reflect.DeepEqual(first.Commands(), second.Commands()) {
		t.Error("repeated redraws recorded different commands")
	}
	if n := first.Commands()[0].Type(); n != recording.CmdClear {
		t.Errorf("redraw at unchanged size starts with %v, want clear", n)
	}
}

func TestControllerDataChangeLeavesNoTrace(t *testing.T) {
	changed, changedSurface := newRasterController(t, ggchart.WithChart(sampleDonut()))
	changed.Resize(300, 250)
	changed.SetChart(sampleLine())

	fresh, freshSurface := newRasterController(t, ggchart.WithChart(sampleLine()))
	fresh.Resize(300, 250)

	samePixels(t, changedSurface.Image(), freshSurface.Image())
}

func TestControllerThemeSwitch(t *testing.T) {
	rec := recording.NewRecorder(0, 0)
	c := ggchart.NewController(rec, ggchart.WithChart(sampleDonut()))
	c.Resize(300, 250)
	rec.Reset()

	if st := c.SetTheme(ggchart.DarkTheme()); st != ggchart.StatusRendered {
		t.Fatalf("SetTheme = %v, want rendered", st)
	}
	if c.Theme() != ggchart.DarkTheme() {
		t.Error("Theme() did not switch")
	}
	if rec.Count(recording.CmdResize) != 0 {
		t.Error("theme switch resized the surface")
	}
	cl, ok := rec.Commands()[0].(recording.ClearCommand)
	if !ok || cl.Color != ggchart.DarkTheme().Background {
		t.Errorf("first command = %#v, want clear to dark background", rec.Commands()[0])
	}
	for _, circle := range commandsOf[recording.CircleCommand](rec) {
		if circle.Color != ggchart.DarkTheme().Background {
			t.Errorf("cutout color = %v, want dark background", circle.Color)
		}
	}
}

func TestControllerCollapseToZero(t *testing.T) {
	rec := recording.NewRecorder(0, 0)
	c := ggchart.NewController(rec, ggchart.WithChart(sampleLine()))
	c.Resize(300, 250)
	n := rec.Len()

	tests := []struct{ w, h int }{{0, 250}, {300, 0}, {-5, -5}}
	for _, tt := range tests {
		if st := c.Resize(tt.w, tt.h); st != ggchart.StatusZeroSize {
			t.Errorf("Resize(%d, %d) = %v, want zero size", tt.w, tt.h, st)
		}
		if c.State() != ggchart.StateIdle {
			t.Errorf("Resize(%d, %d) state = %v, want Idle", tt.w, tt.h, c.State())
		}
	}
	if rec.Len() != n {
		t.Errorf("collapsed container recorded %d extra commands", rec.Len()-n)
	}
	if v := c.Viewport(); v.Width != 0 || v.Height != 0 {
		t.Errorf("viewport = %+v, want zero size", v)
	}
}

func TestControllerWithoutChart(t *testing.T) {
	rec := recording.NewRecorder(0, 0)
	c := ggchart.NewController(rec)

	if st := c.Resize(120, 80); st != ggchart.StatusEmpty {
		t.Errorf("Resize = %v, want empty", st)
	}
	if c.State() != ggchart.StateRendered {
		t.Errorf("state = %v, want Rendered after clearing", c.State())
	}
	if rec.DrawCalls() != 1 || rec.Count(recording.CmdClear) != 1 {
		t.Errorf("draw calls = %d, want a single clear", rec.DrawCalls())
	}
}

func TestControllerEmptyChartData(t *testing.T) {
	rec := recording.NewRecorder(0, 0)
	c := ggchart.NewController(rec, ggchart.WithChart(ggchart.NewDonutChart(nil)))

	st := c.Resize(300, 250)
	if st != ggchart.StatusEmpty {
		t.Errorf("status = %v, want empty", st)
	}
	if !errors.Is(st.Err(), ggchart.ErrEmptyInput) {
		t.Errorf("Err() = %v, want ErrEmptyInput", st.Err())
	}
	if rec.DrawCalls() != 1 {
		t.Errorf("draw calls = %d, want only the clear", rec.DrawCalls())
	}
}

func TestControllerViewportPadding(t *testing.T) {
	var got ggchart.Viewport
	chart := ggchart.ChartFunc(func(_ ggchart.Surface, v ggchart.Viewport, _ ggchart.Theme) ggchart.Status {
		got = v
		return ggchart.StatusRendered
	})
	c := ggchart.NewController(recording.NewRecorder(0, 0),
		ggchart.WithChart(chart), ggchart.WithViewportPadding(12))
	c.Resize(200, 100)

	want := ggchart.Viewport{Width: 200, Height: 100, Padding: 12}
	if got != want {
		t.Errorf("chart saw viewport %+v, want %+v", got, want)
	}
}

func TestControllerResizeFailure(t *testing.T) {
	s := brokenSurface{recording.NewRecorder(0, 0)}
	c := ggchart.NewController(s, ggchart.WithChart(sampleLine()))

	st := c.Resize(300, 250)
	if st != ggchart.StatusFailed {
		t.Fatalf("status = %v, want failed", st)
	}
	if !errors.Is(st.Err(), ggchart.ErrSurface) {
		t.Errorf("Err() = %v, want ErrSurface", st.Err())
	}
	if c.State() != ggchart.StateIdle {
		t.Errorf("state = %v, want Idle", c.State())
	}
	if s.Len() != 0 {
		t.Errorf("recorded %d commands after failed resize, want 0", s.Len())
	}
}

func TestControllerClose(t *testing.T) {
	rec := recording.NewRecorder(0, 0)
	c := ggchart.NewController(rec, ggchart.WithChart(sampleLine()))
	c.Resize(300, 250)

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !rec.Closed() {
		t.Error("surface was not closed")
	}
	if !c.Closed() || c.State() != ggchart.StateIdle || c.LastStatus() != ggchart.StatusClosed {
		t.Errorf("after Close: closed=%v state=%v last=%v", c.Closed(), c.State(), c.LastStatus())
	}

	n := rec.Len()
	calls := map[string]func() ggchart.Status{
		"Resize":   func() ggchart.Status { return c.Resize(400, 300) },
		"SetChart": func() ggchart.Status { return c.SetChart(sampleDonut()) },
		"SetTheme": func() ggchart.Status { return c.SetTheme(ggchart.DarkTheme()) },
		"Redraw":   c.Redraw,
	}
	for name, call := range calls {
		if st := call(); st != ggchart.StatusClosed {
			t.Errorf("%s after Close = %v, want closed", name, st)
		}
	}
	if rec.Len() != n {
		t.Errorf("closed controller recorded %d commands", rec.Len()-n)
	}

	if err := c.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestControllerCloseError(t *testing.T) {
	c := ggchart.NewController(closeFailSurface{recording.NewRecorder(0, 0)})
	err := c.Close()
	if !errors.Is(err, errCloseFailed) {
		t.Errorf("Close = %v, want wrapped release error", err)
	}
	if !c.Closed() {
		t.Error("controller not marked closed after failed release")
	}
}
