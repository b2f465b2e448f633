package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/internal/dataset"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func donutCmd(g *globals) *cobra.Command {
	donutCmd := &cobra.Command{
		Use:   "donut <file>",
		Short: "Render category totals from a data file as a donut chart",
		Long: `Render category totals from a data file as a donut chart.

CSV and XLSX input has one category per row: label, value and an optional
hex color. JSON input is an array of {"name", "value", "color"} records.
The legend is printed to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dopts, _, err := dataOptions(cmd)
			if err != nil {
				return err
			}
			cats, err := dataset.LoadCategories(args[0], dopts...)
			if err != nil {
				return err
			}
			opts, err := donutOptions(cmd)
			if err != nil {
				return err
			}
			ss, err := g.mount(cmd, ggchart.NewDonutChart(cats, opts...))
			if err != nil {
				return err
			}
			printLegend(cmd.OutOrStdout(), cats)
			return ss.Close()
		},
	}
	addDataFlags(donutCmd)
	addDonutFlags(donutCmd)
	return donutCmd
}

func addDonutFlags(cmd *cobra.Command) {
	cmd.Flags().String("caption", ggchart.DefaultCaption, "Caption beneath the total")
	cmd.Flags().String("lang", "en", "BCP 47 language tag for number formatting")
	cmd.Flags().Float64("inner", 0.6, "Cutout radius as a fraction of the outer radius")
}

func donutOptions(cmd *cobra.Command) ([]ggchart.DonutOption, error) {
	caption, _ := cmd.Flags().GetString("caption")
	lang, _ := cmd.Flags().GetString("lang")
	inner, _ := cmd.Flags().GetFloat64("inner")

	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("language %q: %w", lang, err)
	}
	return []ggchart.DonutOption{
		ggchart.WithCaption(caption),
		ggchart.WithLanguage(tag),
		ggchart.WithInnerRatio(inner),
	}, nil
}

func printLegend(w io.Writer, cats []ggchart.Category) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range ggchart.Legend(cats) {
		fmt.Fprintf(tw, "%s\t%g\t%d%%\n", e.Label, e.Value, e.Percent)
	}
	_ = tw.Flush()
}
