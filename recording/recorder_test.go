package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
)

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(800, 600)
	if w, h := rec.Size(); w != 800 || h != 600 {
		t.Errorf("Size() = %dx%d, want 800x600", w, h)
	}
	if rec.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rec.Len())
	}

	neg := NewRecorder(-5, -1)
	if neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("negative size = %dx%d, want 0x0", neg.Width(), neg.Height())
	}
}

func TestRecorderResize(t *testing.T) {
	rec := NewRecorder(0, 0)
	if err := rec.Resize(300, 250); err != nil {
		t.Fatalf("Resize() = %v", err)
	}
	if w, h := rec.Size(); w != 300 || h != 250 {
		t.Errorf("Size() = %dx%d, want 300x250", w, h)
	}

	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		err := rec.Resize(size[0], size[1])
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Resize(%d, %d) = %v, want ErrInvalidSize", size[0], size[1], err)
		}
	}
	if got := rec.Count(CmdResize); got != 1 {
		t.Errorf("Count(CmdResize) = %d, want 1 (failed resizes are not recorded)", got)
	}
}

func TestRecorderRecordsInOrder(t *testing.T) {
	rec := NewRecorder(100, 100)
	red := gg.Hex("#ff0000")

	rec.Clear(gg.White)
	rec.StrokePolyline([]gg.Point{gg.Pt(0, 0), gg.Pt(10, 10)}, ggchart.LineStyle{Color: red, Width: 2})
	rec.FillCircle(gg.Pt(5, 5), 3, red)
	rec.FillSector(gg.Pt(50, 50), 40, 0, 1, red)
	rec.DrawText("hi", gg.Pt(1, 2), ggchart.TextStyle{Size: 10})

	want := []CommandType{CmdClear, CmdPolyline, CmdCircle, CmdSector, CmdText}
	cmds := rec.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(cmds), len(want))
	}
	for i, c := range cmds {
		if c.Type() != want[i] {
			t.Errorf("command %d = %v, want %v", i, c.Type(), want[i])
		}
	}
	if rec.DrawCalls() != 5 {
		t.Errorf("DrawCalls() = %d, want 5", rec.DrawCalls())
	}

	sector := cmds[3].(SectorCommand)
	if sector.Radius != 40 || sector.End != 1 || sector.Color != red {
		t.Errorf("sector = %+v", sector)
	}
	text := cmds[4].(TextCommand)
	if text.Text != "hi" || text.At != gg.Pt(1, 2) {
		t.Errorf("text = %+v", text)
	}
}

func TestRecorderCopiesPoints(t *testing.T) {
	rec := NewRecorder(100, 100)
	pts := []gg.Point{gg.Pt(1, 1), gg.Pt(2, 2)}
	rec.StrokePolyline(pts, ggchart.LineStyle{Width: 1})
	pts[0] = gg.Pt(99, 99)

	got := rec.Commands()[0].(PolylineCommand).Points[0]
	if got != gg.Pt(1, 1) {
		t.Errorf("recorded point = %v, want (1,1); caller mutation leaked", got)
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.Clear(gg.Black)
	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", rec.Len())
	}
	if w, h := rec.Size(); w != 10 || h != 10 {
		t.Errorf("Reset changed size to %dx%d", w, h)
	}
}

func TestRecorderClose(t *testing.T) {
	rec := NewRecorder(10, 10)
	if rec.Closed() {
		t.Fatal("new recorder reports closed")
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if !rec.Closed() {
		t.Error("Closed() = false after Close")
	}
}

func TestRecordingIsImmutable(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.Clear(gg.Black)
	r := rec.FinishRecording()
	rec.Clear(gg.White)

	if len(r.Commands()) != 1 {
		t.Errorf("recording has %d commands, want 1", len(r.Commands()))
	}
	if r.Width() != 10 || r.Height() != 10 {
		t.Errorf("recording size = %dx%d, want 10x10", r.Width(), r.Height())
	}
}

func TestRecordingPlayback(t *testing.T) {
	src := NewRecorder(300, 250)
	src.Clear(gg.White)
	src.StrokePolyline([]gg.Point{gg.Pt(0, 0), gg.Pt(1, 1)}, ggchart.LineStyle{Width: 1})
	src.FillSector(gg.Pt(150, 125), 100, 0, 2, gg.Black)
	src.DrawText("42", gg.Pt(150, 115), ggchart.TextStyle{Size: 24, Bold: true})

	dst := NewRecorder(0, 0)
	if err := src.FinishRecording().Playback(dst); err != nil {
		t.Fatalf("Playback() = %v", err)
	}
	if w, h := dst.Size(); w != 300 || h != 250 {
		t.Errorf("dst size = %dx%d, want 300x250", w, h)
	}
	// dst also holds the Resize issued by Playback itself.
	if dst.Count(CmdResize) != 1 {
		t.Errorf("dst resize count = %d, want 1", dst.Count(CmdResize))
	}
	if dst.DrawCalls() != src.DrawCalls() {
		t.Errorf("dst draw calls = %d, want %d", dst.DrawCalls(), src.DrawCalls())
	}
}

type failingSurface struct{ *Recorder }

func (failingSurface) Resize(int, int) error { return errors.New("boom") }

func TestRecordingPlaybackResizeError(t *testing.T) {
	src := NewRecorder(20, 20)
	src.Clear(gg.White)

	err := src.FinishRecording().Playback(failingSurface{NewRecorder(0, 0)})
	if err == nil {
		t.Fatal("Playback() = nil, want resize error")
	}
}
