package main

import (
	"encoding/base64"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/user/schoof_perf_go/internal/analysis"
	"github.com/user/schoof_perf_go/internal/parser"
	"github.com/user/schoof_perf_go/internal/report"
)

// settings is the resolved configuration for one run of the pipeline.
type settings struct {
	InputPath string
	Analysis  analysis.Options
	Chart     report.ChartOptions
}

// result carries every stage's output.
type result struct {
	Set  *parser.MeasurementSet
	Fit  *analysis.FitResult
	Bits []analysis.BitSummary
}

// ChartView is what the viewer window displays.
type ChartView struct {
	InputPath string                `json:"inputPath"`
	Title     string                `json:"title"`
	Params    string                `json:"params"`
	Image     string                `json:"image"` // data URL
	Points    int                   `json:"points"`
	Skipped   int                   `json:"skipped"`
	Slope     float64               `json:"slope"`
	Intercept float64               `json:"intercept"`
	RSquared  float64               `json:"rSquared"`
	Bits      []analysis.BitSummary `json:"bits"`
}

// analyze runs the load and fit stages.
func analyze(s settings) (*result, error) {
	set, err := parser.LoadMeasurements(s.InputPath)
	if err != nil {
		return nil, err
	}
	log.Infof("Loaded %d measurements from %s (%d rows skipped)", set.Len(), s.InputPath, set.SkippedRows)

	fit, err := analysis.Analyze(set, s.Analysis)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.InputPath, err)
	}
	log.Infof("Fitted ln(time) = %.4f * ln(ln q) %+.4f (R^2 = %.4f)", fit.Slope, fit.Intercept, fit.RSquared)

	bits, err := analysis.SummarizeByBits(set)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize timings: %w", err)
	}
	return &result{Set: set, Fit: fit, Bits: bits}, nil
}

// buildView runs the whole pipeline, rendering the chart in memory.
func buildView(s settings) (*ChartView, error) {
	res, err := analyze(s)
	if err != nil {
		return nil, err
	}

	s.Chart.Format = "png"
	img, err := report.CreateRegressionPlot(res.Fit, res.Set.ParamString(), s.Chart)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return &ChartView{
		InputPath: s.InputPath,
		Title:     report.ChartTitle(res.Set.ParamString()),
		Params:    res.Set.ParamString(),
		Image:     "data:image/png;base64," + base64.StdEncoding.EncodeToString(img),
		Points:    res.Set.Len(),
		Skipped:   res.Set.SkippedRows,
		Slope:     res.Fit.Slope,
		Intercept: res.Fit.Intercept,
		RSquared:  res.Fit.RSquared,
		Bits:      res.Bits,
	}, nil
}
