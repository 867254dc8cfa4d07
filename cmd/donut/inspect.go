package main

import (
	"github.com/frameloss/donut"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the computed angles, ring geometry and legend of a chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := loadChart()
			if err != nil {
				return err
			}
			tag, err := language.Parse(viper.GetString("lang"))
			if err != nil {
				tag = language.AmericanEnglish
			}
			p := message.NewPrinter(tag)
			out := cmd.OutOrStdout()
			w, h := viper.GetInt("width"), viper.GetInt("height")

			snap := chart.Snapshot()
			spans, total := donut.Partition(snap.Slices)
			p.Fprintf(out, "%d slices, total %.2f, thickness %.2f\n", len(snap.Slices), total, snap.ThicknessRatio)
			if spans == nil {
				p.Fprintln(out, "nothing to draw")
				return nil
			}
			for i, sp := range spans {
				p.Fprintf(out, "  %-16s start %8.2f° sweep %8.2f° (%.1f%%)\n", snap.Slices[i].Label, sp.Start, sp.Sweep, sp.Percent())
			}

			layout := donut.DefaultLayout()
			g, ok := layout.Compute(w, h, snap.ThicknessRatio, spans)
			if !ok {
				p.Fprintf(out, "canvas %dx%d is too small for the ring\n", w, h)
				return nil
			}
			p.Fprintf(out, "ring: side %d, center (%.1f, %.1f), radii %.1f / %.1f, labels at %.1f\n",
				g.Side, g.Center.X, g.Center.Y, g.OuterRadius, g.InnerRadius, g.LabelRadius)
			for _, row := range layout.LegendRows(w, g.Outer.Min.Y, snap.Slices, spans) {
				p.Fprintf(out, "  legend (%.0f, %.0f) %s\n", row.Swatch.Min.X, row.Swatch.Min.Y, row.Text)
			}
			return nil
		},
	}
	cmd.Flags().IntP("width", "W", 480, "canvas width")
	cmd.Flags().IntP("height", "H", 320, "canvas height")
	cmd.Flags().String("lang", "en-US", "language used to format numbers")
	return cmd
}
