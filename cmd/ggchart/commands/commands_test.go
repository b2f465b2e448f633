package commands

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/ggchart"
	"github.com/spf13/cobra"
)

const (
	seriesCSV = `time,pressure,flow
2026-03-01T10:00:00Z,48.2,31.0
2026-03-01T11:00:00Z,51.7,35.5
2026-03-01T12:00:00Z,49.9,42.1
`
	categoriesCSV = `label,value
Desktop,30
Mobile,70
`
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { ggchart.SetLogger(nil) })
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLineCommandWritesPNG(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "series.csv", seriesCSV)
	outPath := filepath.Join(dir, "line.png")

	out, err := run(t, "line", in, "-o", outPath, "-W", "320", "-H", "200", "--tz", "UTC", "--theme", "dark")
	if err != nil {
		t.Fatalf("line: %v", err)
	}
	if !strings.Contains(out, "wrote "+outPath) {
		t.Errorf("output = %q, want confirmation", out)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 200 {
		t.Errorf("image is %dx%d, want 320x200", cfg.Width, cfg.Height)
	}
}

func TestDonutCommandRecordingBackend(t *testing.T) {
	in := writeFile(t, t.TempDir(), "devices.csv", categoriesCSV)

	out, err := run(t, "donut", in, "--backend", "recording")
	if err != nil {
		t.Fatalf("donut: %v", err)
	}
	for _, want := range []string{
		"8 commands: Resize=1 Clear=1 Circle=2 Sector=2 Text=2",
		"Desktop  30  30%",
		"Mobile   70  70%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDemoCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"demo", "--backend", "recording", "--hours", "5"}, "Polyline=8"},
		{[]string{"demo", "donut", "--backend", "recording"}, "Sector=3"},
		{[]string{"demo", "donut", "--backend", "recording"}, "Maintenance"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("demo: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestSampleSeriesIsDeterministic(t *testing.T) {
	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := sampleSeries(7, 3, end)
	b := sampleSeries(7, 3, end)
	if len(a) != 3 || a[0].Len() != 4 {
		t.Fatalf("got %d series of %d points, want 3 of 4", len(a), a[0].Len())
	}
	for i := range a {
		for j := range a[i].Points {
			if a[i].Points[j] != b[i].Points[j] {
				t.Fatalf("series %d point %d differs between runs", i, j)
			}
		}
	}
	if got := a[0].Points[3].Time; !got.Equal(end) {
		t.Errorf("last point at %v, want %v", got, end)
	}
}

func TestCommandErrors(t *testing.T) {
	in := writeFile(t, t.TempDir(), "series.csv", seriesCSV)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown theme", []string{"line", in, "--theme", "sepia", "--backend", "recording"}},
		{"unknown backend", []string{"line", in, "--backend", "plotter"}},
		{"unknown format", []string{"line", in, "--format", "yaml"}},
		{"unknown zone", []string{"line", in, "--tz", "Mars/Olympus"}},
		{"missing file", []string{"donut", filepath.Join(t.TempDir(), "none.csv")}},
		{"zero size", []string{"line", in, "-W", "0", "--backend", "recording"}},
		{"bad language", []string{"donut", in, "--lang", "!!"}},
		{"bad demo kind", []string{"demo", "bar"}},
		{"watch kind", []string{"watch", "bar", in}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Errorf("%v succeeded, want error", tt.args)
			}
		})
	}
}

func newTestSession(t *testing.T) (*session, *bytes.Buffer, func() (ggchart.Chart, error), string) {
	t.Helper()
	path := writeFile(t, t.TempDir(), "devices.csv", categoriesCSV)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	addDataFlags(cmd)
	addDonutFlags(cmd)

	load, err := chartLoader(cmd, "donut", path)
	if err != nil {
		t.Fatal(err)
	}
	chart, err := load()
	if err != nil {
		t.Fatal(err)
	}
	g := &globals{width: 300, height: 200, theme: "light", output: "devices.png", backend: "recording"}
	ss, err := g.mount(cmd, chart)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = ss.Close() })
	return ss, &out, load, path
}

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestWatchLoopRedrawsOnWrite(t *testing.T) {
	ss, out, load, path := newTestSession(t)
	writeFile(t, filepath.Dir(path), "devices.csv", categoriesCSV+"Tablet,12\n")

	events := make(chan fsnotify.Event, 4)
	events <- fsnotify.Event{Name: filepath.Join(filepath.Dir(path), "other.csv"), Op: fsnotify.Write}
	events <- fsnotify.Event{Name: path, Op: fsnotify.Chmod}
	events <- fsnotify.Event{Name: path, Op: fsnotify.Write}
	close(events)

	if err := watchLoop(context.Background(), ss, discardLogger(), path, load, events, nil); err != nil {
		t.Fatalf("watchLoop: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d passes, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Sector=2") || !strings.Contains(lines[1], "Sector=3") {
		t.Errorf("passes = %q", lines)
	}
	if strings.Contains(lines[1], "Resize") {
		t.Errorf("redraw at unchanged size resized the surface: %q", lines[1])
	}
}

func TestWatchLoopKeepsChartOnBadReload(t *testing.T) {
	ss, out, load, path := newTestSession(t)
	writeFile(t, filepath.Dir(path), "devices.csv", "Desktop,lots\n")

	events := make(chan fsnotify.Event, 1)
	events <- fsnotify.Event{Name: path, Op: fsnotify.Write}
	close(events)

	if err := watchLoop(context.Background(), ss, discardLogger(), path, load, events, nil); err != nil {
		t.Fatalf("watchLoop: %v", err)
	}
	if n := strings.Count(out.String(), "commands:"); n != 1 {
		t.Errorf("got %d passes, want only the initial one", n)
	}
	if ss.ctl.State() != ggchart.StateRendered {
		t.Errorf("state = %v, want Rendered", ss.ctl.State())
	}
}

func TestWatchLoopStopsOnCancel(t *testing.T) {
	ss, _, load, path := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	events := make(chan fsnotify.Event)
	errs := make(chan error)
	if err := watchLoop(ctx, ss, discardLogger(), path, load, events, errs); err != nil {
		t.Errorf("watchLoop = %v, want nil on cancel", err)
	}
}
