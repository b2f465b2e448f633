package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/internal/dataset"
	"github.com/gogpu/ggchart/recording"
	"github.com/spf13/cobra"
)

// session is a mounted Controller whose passes are written to one output.
type session struct {
	ctl     *ggchart.Controller
	surface ggchart.Surface
	output  string
	out     io.Writer
}

// mount creates the configured backend, binds chart to a Controller and
// performs the first pass at the requested size.
func (g *globals) mount(cmd *cobra.Command, chart ggchart.Chart, opts ...ggchart.ControllerOption) (*session, error) {
	th, ok := ggchart.ThemeByName(g.theme)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", g.theme)
	}
	s, err := recording.NewBackend(g.backend, 0, 0)
	if err != nil {
		return nil, err
	}
	opts = append([]ggchart.ControllerOption{ggchart.WithTheme(th), ggchart.WithChart(chart)}, opts...)
	ss := &session{
		ctl:     ggchart.NewController(s, opts...),
		surface: s,
		output:  g.output,
		out:     cmd.OutOrStdout(),
	}
	if err := ss.write(ss.ctl.Resize(g.width, g.height)); err != nil {
		_ = ss.Close()
		return nil, err
	}
	return ss, nil
}

// update rebinds the chart and writes the new pass.
func (s *session) update(chart ggchart.Chart) error {
	return s.write(s.ctl.SetChart(chart))
}

func (s *session) write(st ggchart.Status) error {
	switch st {
	case ggchart.StatusFailed, ggchart.StatusClosed, ggchart.StatusZeroSize:
		return fmt.Errorf("render: %w", st.Err())
	case ggchart.StatusEmpty:
		fmt.Fprintf(s.out, "%s: nothing to draw\n", s.output)
	}

	switch surf := s.surface.(type) {
	case recording.FileBackend:
		if err := surf.SaveToFile(s.output); err != nil {
			return err
		}
		w, h := surf.Size()
		fmt.Fprintf(s.out, "wrote %s (%dx%d, %s)\n", s.output, w, h, st)
	case *recording.Recorder:
		summarize(s.out, surf)
		surf.Reset()
	default:
		return fmt.Errorf("backend %T cannot write %s", s.surface, s.output)
	}
	return nil
}

var summaryOrder = []recording.CommandType{
	recording.CmdResize,
	recording.CmdClear,
	recording.CmdPolyline,
	recording.CmdCircle,
	recording.CmdSector,
	recording.CmdText,
}

func summarize(w io.Writer, rec *recording.Recorder) {
	fmt.Fprintf(w, "%d commands:", rec.Len())
	for _, t := range summaryOrder {
		if n := rec.Count(t); n > 0 {
			fmt.Fprintf(w, " %s=%d", t, n)
		}
	}
	fmt.Fprintln(w)
}

// Close releases the Controller and its surface.
func (s *session) Close() error { return s.ctl.Close() }

// addDataFlags registers the input flags shared by line, donut and watch.
func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "auto", "Input format: auto, csv, json or xlsx")
	cmd.Flags().String("sheet", "", "XLSX sheet name (default: first sheet)")
	cmd.Flags().String("time-key", "time", "JSON record key holding the time")
	cmd.Flags().String("tz", "Local", "Time zone for parsing and labelling times")
}

func dataOptions(cmd *cobra.Command) ([]dataset.Option, *time.Location, error) {
	formatName, _ := cmd.Flags().GetString("format")
	sheet, _ := cmd.Flags().GetString("sheet")
	timeKey, _ := cmd.Flags().GetString("time-key")
	tz, _ := cmd.Flags().GetString("tz")

	format, err := dataset.ParseFormat(formatName)
	if err != nil {
		return nil, nil, err
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, nil, fmt.Errorf("time zone %q: %w", tz, err)
	}
	opts := []dataset.Option{
		dataset.WithFormat(format),
		dataset.WithTimeKey(timeKey),
		dataset.WithLocation(loc),
	}
	if sheet != "" {
		opts = append(opts, dataset.WithSheet(sheet))
	}
	return opts, loc, nil
}
