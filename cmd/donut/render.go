package main

import (
	"bufio"
	"github.com/frameloss/donut"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart to a PNG or SVG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := loadChart()
			if err != nil {
				return err
			}
			w, h := viper.GetInt("width"), viper.GetInt("height")
			renderer := donut.NewRenderer(
				donut.WithLogger(log),
				donut.WithFontSize(viper.GetFloat64("font-size")),
			)

			if viper.GetBool("dry-run") {
				rec := &donut.Recorder{}
				renderer.Render(rec, w, h, chart.Snapshot())
				_, err := cmd.OutOrStdout().Write([]byte(rec.String()))
				return err
			}

			out := viper.GetString("out")
			format := strings.ToLower(viper.GetString("format"))
			if format == "" {
				format = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
			}
			stats, err := renderFile(renderer, chart, out, format, w, h)
			if err != nil {
				return err
			}
			log.Info("chart written",
				zap.String("file", out),
				zap.String("format", format),
				zap.Int("slices", stats.Slices),
				zap.Bool("drawn", stats.Drawn),
			)
			return nil
		},
	}
	cmd.Flags().IntP("width", "W", 480, "canvas width")
	cmd.Flags().IntP("height", "H", 320, "canvas height")
	cmd.Flags().StringP("out", "o", "donut.png", "output file")
	cmd.Flags().StringP("format", "f", "", "png or svg, taken from the output name when empty")
	cmd.Flags().Bool("dry-run", false, "print the draw calls instead of writing a file")
	return cmd
}

func renderFile(renderer *donut.Renderer, chart *donut.Chart, out, format string, w, h int) (donut.Stats, error) {
	if w <= 0 || h <= 0 {
		return donut.Stats{}, errors.Errorf("invalid canvas size %dx%d", w, h)
	}
	if format != "png" && format != "svg" {
		return donut.Stats{}, errors.Errorf("unknown format %q", format)
	}
	f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return donut.Stats{}, errors.Wrapf(err, "create %s", out)
	}
	stats, err := renderTo(renderer, chart, f, format, w, h)
	return stats, errors.Wrapf(err, "write %s", out)
}

// renderTo encodes the chart onto wc and closes it. The close error is
// returned when everything before it succeeded.
func renderTo(renderer *donut.Renderer, chart *donut.Chart, wc io.WriteCloser, format string, w, h int) (donut.Stats, error) {
	stats, err := encode(renderer, chart, bufio.NewWriter(wc), format, w, h)
	if cerr := wc.Close(); err == nil {
		err = cerr
	}
	return stats, err
}

func encode(renderer *donut.Renderer, chart *donut.Chart, bw *bufio.Writer, format string, w, h int) (donut.Stats, error) {
	var stats donut.Stats
	switch format {
	case "svg":
		s := donut.NewSVGSurface(bw, w, h)
		stats = renderer.Render(s, w, h, chart.Snapshot())
		if err := s.Close(); err != nil {
			return stats, err
		}
	case "png":
		fonts, err := loadFonts()
		if err != nil {
			return donut.Stats{}, err
		}
		s, err := donut.NewRasterSurface(w, h, fonts)
		if err != nil {
			return donut.Stats{}, err
		}
		stats = renderer.Render(s, w, h, chart.Snapshot())
		if err := s.EncodePNG(bw); err != nil {
			return stats, err
		}
	default:
		return donut.Stats{}, errors.Errorf("unknown format %q", format)
	}
	return stats, bw.Flush()
}
