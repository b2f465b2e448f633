package commands

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
	"github.com/spf13/cobra"
)

func demoCmd(g *globals) *cobra.Command {
	demoCmd := &cobra.Command{
		Use:       "demo [line|donut]",
		Short:     "Render a chart from built-in sample data",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"line", "donut"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "line"
			if len(args) > 0 {
				kind = args[0]
			}
			seed, _ := cmd.Flags().GetUint64("seed")
			hours, _ := cmd.Flags().GetInt("hours")

			var (
				chart ggchart.Chart
				cats  []ggchart.Category
			)
			switch kind {
			case "line":
				end := time.Now().Truncate(time.Hour)
				chart = ggchart.NewLineChart(sampleSeries(seed, hours, end), ggchart.WithLocation(time.Local))
			case "donut":
				cats = sampleCategories()
				chart = ggchart.NewDonutChart(cats)
			default:
				return fmt.Errorf("unknown chart kind %q", kind)
			}

			ss, err := g.mount(cmd, chart)
			if err != nil {
				return err
			}
			if cats != nil {
				printLegend(cmd.OutOrStdout(), cats)
			}
			return ss.Close()
		},
	}
	demoCmd.Flags().Uint64("seed", 1, "Seed for the generated line series")
	demoCmd.Flags().Int("hours", 24, "Number of hourly samples before the current hour")
	return demoCmd
}

// sampleSeries generates hourly pressure, flow and level readings ending at
// end. The same seed always yields the same values.
func sampleSeries(seed uint64, hours int, end time.Time) []ggchart.Series {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	series := []ggchart.Series{
		{Name: "pressure", Color: gg.Hex("#0ea5e9")},
		{Name: "flow", Color: gg.Hex("#10b981")},
		{Name: "level", Color: gg.Hex("#f59e0b")},
	}
	base := []struct{ min, spread float64 }{{45, 10}, {30, 20}, {60, 15}}
	for i := hours; i >= 0; i-- {
		t := end.Add(-time.Duration(i) * time.Hour)
		for j := range series {
			series[j].Points = append(series[j].Points, ggchart.SeriesPoint{
				Time:  t,
				Value: base[j].min + rng.Float64()*base[j].spread,
			})
		}
	}
	return series
}

func sampleCategories() []ggchart.Category {
	return []ggchart.Category{
		{Label: "Online", Value: 62, Color: gg.Hex("#0D9488")},
		{Label: "Offline", Value: 9, Color: gg.Hex("#EF4444")},
		{Label: "Maintenance", Value: 5, Color: gg.Hex("#F59E0B")},
	}
}
