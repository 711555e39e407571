// Package main provides the CLI entrypoint for schoof_perf.
package main

import (
	"embed"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"gonum.org/v1/plot/vg"

	"github.com/user/schoof_perf_go/internal/analysis"
	"github.com/user/schoof_perf_go/internal/config"
	"github.com/user/schoof_perf_go/internal/parser"
	"github.com/user/schoof_perf_go/internal/report"
)

//go:embed all:frontend/public
var assets embed.FS

const (
	defaultWidth  = 576.0 // points, 8in
	defaultHeight = 360.0 // points, 5in
)

var (
	inputPath    string
	configPath   string
	chartWidth   float64
	chartHeight  float64
	curveSamples int
	verbose      bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "schoof_perf",
		Short:         "Plot Schoof algorithm timings against log(log q)",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runViewerCmd,
	}

	rootCmd.PersistentFlags().StringVar(&inputPath, "input", parser.DefaultInputPath, "results CSV written by the perf harness")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "TOML config file")
	rootCmd.PersistentFlags().Float64Var(&chartWidth, "width", defaultWidth, "chart width in points")
	rootCmd.PersistentFlags().Float64Var(&chartHeight, "height", defaultHeight, "chart height in points")
	rootCmd.PersistentFlags().IntVar(&curveSamples, "samples", analysis.DefaultCurveSamples, "points sampled along the regression line")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newSummaryCmd())

	return rootCmd
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the fit and per-bit timings instead of opening the viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			res, err := analyze(s)
			if err != nil {
				return err
			}
			return report.RenderSummary(cmd.OutOrStdout(), res.Set, res.Fit, res.Bits)
		},
	}
}

func runViewerCmd(cmd *cobra.Command, _ []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	// Compute before opening the window so bad input fails on the command line.
	view, err := buildView(s)
	if err != nil {
		return err
	}

	app := NewApp(s, view)
	err = wails.Run(&options.App{
		Title:  "Schoof Perf",
		Width:  int(s.Chart.Width.Points()) + 80,
		Height: int(s.Chart.Height.Points()) + 220,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 255},
		OnStartup:        app.Startup,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		return fmt.Errorf("error running viewer: %w", err)
	}
	return nil
}

// resolveSettings merges the config file under the flags; explicitly set flags win.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "input", &inputPath, fileCfg.Input.Path)
	applyFloatConfig(cmd, "width", &chartWidth, fileCfg.Chart.Width)
	applyFloatConfig(cmd, "height", &chartHeight, fileCfg.Chart.Height)
	applyIntConfig(cmd, "samples", &curveSamples, fileCfg.Chart.Samples)

	if err := validateFlags(); err != nil {
		return settings{}, err
	}
	log.Debugf("input=%s width=%.0f height=%.0f samples=%d", inputPath, chartWidth, chartHeight, curveSamples)

	return settings{
		InputPath: inputPath,
		Analysis:  analysis.Options{CurveSamples: curveSamples},
		Chart: report.ChartOptions{
			Width:  vg.Points(chartWidth),
			Height: vg.Points(chartHeight),
			Format: "png",
		},
	}, nil
}

func validateFlags() error {
	if inputPath == "" {
		return fmt.Errorf("--input must not be empty")
	}
	if chartWidth <= 0 || chartHeight <= 0 {
		return fmt.Errorf("--width and --height must be > 0")
	}
	if curveSamples < 2 {
		return fmt.Errorf("--samples must be >= 2")
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
