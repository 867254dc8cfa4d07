package main

import (
	"fmt"
	"github.com/frameloss/donut"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"os"
	"strings"
)

var log = zap.NewNop()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "donut",
		Short:         "Render donut charts from JSON or YAML data files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			l, err := donut.NewLogger(donut.LoggerConfig{
				Level: viper.GetString("log-level"),
				JSON:  viper.GetString("log-format") == "json",
				Color: viper.GetString("log-format") != "plain",
			})
			if err != nil {
				return err
			}
			log = l
			return nil
		},
	}
	root.PersistentFlags().String("log-level", "info", "debug, info, warn or error")
	root.PersistentFlags().String("log-format", "console", "console, plain or json")
	root.PersistentFlags().StringP("data", "d", "", "chart data file (.json, .yaml)")
	root.PersistentFlags().Float64("thickness", donut.DefaultThicknessRatio, "ring thickness as a fraction of the outer diameter, clamped to 0..0.5")
	root.PersistentFlags().String("background", "", "chart background, #rrggbb or transparent")
	root.PersistentFlags().Float64("font-size", donut.DefaultFontSize, "label and legend font size in points")
	root.PersistentFlags().String("font", "", "TrueType font file, the embedded Go fonts by default")
	_ = viper.BindPFlags(root.PersistentFlags())

	root.AddCommand(newRenderCmd(), newInspectCmd(), newViewCmd())
	return root
}

func initConfig() {
	// a missing .env is fine
	_ = godotenv.Load()
	viper.SetEnvPrefix("DONUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadChart builds the chart from the data file, then applies the overrides.
func loadChart() (*donut.Chart, error) {
	path := viper.GetString("data")
	if path == "" {
		return nil, errors.New("no data file, use --data or DONUT_DATA")
	}
	df, err := donut.LoadFile(path)
	if err != nil {
		return nil, err
	}
	chart := donut.NewChart()
	if err := df.Apply(chart); err != nil {
		return nil, err
	}
	if err := applyOverrides(chart); err != nil {
		return nil, err
	}
	return chart, nil
}

// applyOverrides sets the thickness and background given by flag or
// environment. It runs after every data file load so they keep precedence.
func applyOverrides(chart *donut.Chart) error {
	if viper.IsSet("thickness") {
		chart.SetThicknessRatio(viper.GetFloat64("thickness"))
	}
	if bg := viper.GetString("background"); bg != "" {
		c, err := donut.ParseColor(bg)
		if err != nil {
			return err
		}
		chart.SetBackgroundColor(c)
	}
	return nil
}

func loadFonts() (donut.Fonts, error) {
	if path := viper.GetString("font"); path != "" {
		return donut.LoadFont(path)
	}
	return donut.DefaultFonts()
}

func main() {
	cobra.OnInitialize(initConfig)
	if err := newRootCmd().Execute(); err != nil {
		log.Error("donut failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}
