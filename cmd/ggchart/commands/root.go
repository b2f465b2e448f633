// Package commands implements the ggchart command line.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/recording"
	"github.com/spf13/cobra"

	// Registers the "raster" backend.
	_ "github.com/gogpu/ggchart/raster"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	width   int
	height  int
	theme   string
	output  string
	backend string
	verbose bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	rootCmd := &cobra.Command{
		Use:   "ggchart",
		Short: "ggchart renders line and donut charts to PNG",
		Long: `ggchart draws time series as line charts and category totals as
donut charts. Input is read from CSV, JSON or XLSX files.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if g.verbose {
				level = slog.LevelDebug
			}
			g.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: level}))
			ggchart.SetLogger(g.logger)
		},
	}

	rootCmd.PersistentFlags().IntVarP(&g.width, "width", "W", 600, "Output width in pixels")
	rootCmd.PersistentFlags().IntVarP(&g.height, "height", "H", 400, "Output height in pixels")
	rootCmd.PersistentFlags().StringVarP(&g.theme, "theme", "t", "light", "Color theme (light or dark)")
	rootCmd.PersistentFlags().StringVarP(&g.output, "output", "o", "chart.png", "Output file path")
	rootCmd.PersistentFlags().StringVar(&g.backend, "backend", "raster",
		fmt.Sprintf("Drawing backend %v; non-file backends print a summary instead", recording.Backends()))
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(lineCmd(g))
	rootCmd.AddCommand(donutCmd(g))
	rootCmd.AddCommand(demoCmd(g))
	rootCmd.AddCommand(watchCmd(g))
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
