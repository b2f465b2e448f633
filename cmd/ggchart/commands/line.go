package commands

import (
	"time"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/internal/dataset"
	"github.com/spf13/cobra"
)

func lineCmd(g *globals) *cobra.Command {
	lineCmd := &cobra.Command{
		Use:   "line <file>",
		Short: "Render series from a data file as a line chart",
		Long: `Render series from a data file as a line chart.

CSV and XLSX input has a header row; the first column holds the time of
each row and every following column is one series. JSON input is an array
of records keyed by --time-key and one key per series.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dopts, loc, err := dataOptions(cmd)
			if err != nil {
				return err
			}
			series, err := dataset.LoadSeries(args[0], dopts...)
			if err != nil {
				return err
			}
			ss, err := g.mount(cmd, ggchart.NewLineChart(series, lineOptions(cmd, loc)...), viewportOption(cmd))
			if err != nil {
				return err
			}
			return ss.Close()
		},
	}
	addDataFlags(lineCmd)
	addLineFlags(lineCmd)
	return lineCmd
}

func addLineFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("padding", ggchart.DefaultPadding, "Plot inset in pixels")
	cmd.Flags().Int("grid", ggchart.DefaultGridDivisions, "Number of value grid divisions")
	cmd.Flags().Int("max-labels", ggchart.DefaultMaxTimeLabels, "Maximum number of time axis labels")
	cmd.Flags().Float64("line-width", 2, "Series line width")
	cmd.Flags().Float64("marker", 3, "Point marker radius (0 disables markers)")
}

func lineOptions(cmd *cobra.Command, loc *time.Location) []ggchart.LineOption {
	grid, _ := cmd.Flags().GetInt("grid")
	maxLabels, _ := cmd.Flags().GetInt("max-labels")
	lineWidth, _ := cmd.Flags().GetFloat64("line-width")
	marker, _ := cmd.Flags().GetFloat64("marker")
	return []ggchart.LineOption{
		ggchart.WithGridDivisions(grid),
		ggchart.WithMaxTimeLabels(maxLabels),
		ggchart.WithLineWidth(lineWidth),
		ggchart.WithMarkerRadius(marker),
		ggchart.WithLocation(loc),
	}
}

func viewportOption(cmd *cobra.Command) ggchart.ControllerOption {
	padding, err := cmd.Flags().GetFloat64("padding")
	if err != nil {
		padding = ggchart.DefaultPadding
	}
	return ggchart.WithViewportPadding(padding)
}
