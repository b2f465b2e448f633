package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/internal/dataset"
	"github.com/spf13/cobra"
)

func watchCmd(g *globals) *cobra.Command {
	watchCmd := &cobra.Command{
		Use:   "watch <line|donut> <file>",
		Short: "Re-render a chart whenever its data file changes",
		Long: `Render a chart once, then keep the chart mounted and redraw it into the
same output every time the data file is written. A file that fails to load
is reported and the previous chart is kept. Stop with Ctrl-C.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			load, err := chartLoader(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			chart, err := load()
			if err != nil {
				return err
			}
			ss, err := g.mount(cmd, chart, viewportOption(cmd))
			if err != nil {
				return err
			}
			defer ss.Close()

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed creating file watcher: %w", err)
			}
			defer watcher.Close()
			// Editors often replace the file, so watch its directory.
			if err := watcher.Add(filepath.Dir(args[1])); err != nil {
				return fmt.Errorf("watch %s: %w", args[1], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", args[1])
			return watchLoop(cmd.Context(), ss, g.logger, args[1], load, watcher.Events, watcher.Errors)
		},
	}
	addDataFlags(watchCmd)
	addLineFlags(watchCmd)
	addDonutFlags(watchCmd)
	return watchCmd
}

// chartLoader returns a function that reads path and builds a chart of the
// given kind from it.
func chartLoader(cmd *cobra.Command, kind, path string) (func() (ggchart.Chart, error), error) {
	dopts, loc, err := dataOptions(cmd)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "line":
		lopts := lineOptions(cmd, loc)
		return func() (ggchart.Chart, error) {
			series, err := dataset.LoadSeries(path, dopts...)
			if err != nil {
				return nil, err
			}
			return ggchart.NewLineChart(series, lopts...), nil
		}, nil
	case "donut":
		copts, err := donutOptions(cmd)
		if err != nil {
			return nil, err
		}
		return func() (ggchart.Chart, error) {
			cats, err := dataset.LoadCategories(path, dopts...)
			if err != nil {
				return nil, err
			}
			return ggchart.NewDonutChart(cats, copts...), nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown chart kind %q", kind)
	}
}

// watchLoop rebinds the chart loaded from path each time events reports a
// write to it. It returns when ctx is done or events is closed.
func watchLoop(ctx context.Context, ss *session, log *slog.Logger, path string,
	load func() (ggchart.Chart, error), events <-chan fsnotify.Event, errs <-chan error) error {
	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			chart, err := load()
			if err != nil {
				log.Warn("reload failed, keeping previous chart", "file", path, "err", err)
				continue
			}
			if err := ss.update(chart); err != nil {
				return err
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			log.Error("file watcher", "err", err)
		}
	}
}
