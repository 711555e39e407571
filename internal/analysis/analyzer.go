package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/user/schoof_perf_go/internal/parser"
)

// Transform maps q to the regression abscissa ln(ln(q)).
// It is finite for every q > 1 and negative below e.
func Transform(q float64) float64 {
	return math.Log(math.Log(q))
}

// FitLogLog fits ln(time) against ln(ln(q)) by ordinary least squares.
func FitLogLog(qs, times []float64, opts Options) (*FitResult, error) {
	if len(qs) != len(times) {
		return nil, fmt.Errorf("q and time series differ in length: %d vs %d", len(qs), len(times))
	}
	n := len(qs)
	if n < 2 {
		return nil, &InsufficientDataError{Points: n, Reason: "at least 2 valid measurements are required"}
	}

	x := make([]float64, n)
	y := make([]float64, n)
	for i := range qs {
		x[i] = Transform(qs[i])
		y[i] = math.Log(times[i])
		if !isFinite(x[i]) || !isFinite(y[i]) {
			return nil, &InsufficientDataError{
				Points: n,
				Reason: fmt.Sprintf("measurement %d (q=%g, time=%g) has no finite log-log coordinates", i, qs[i], times[i]),
			}
		}
	}

	xMin, xMax := floats.Min(x), floats.Max(x)
	if xMin == xMax {
		return nil, &InsufficientDataError{Points: n, Reason: "all q values are identical, slope is undefined"}
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	if !isFinite(slope) || !isFinite(intercept) {
		return nil, &InsufficientDataError{Points: n, Reason: "least squares fit did not converge to finite coefficients"}
	}

	samples := opts.CurveSamples
	if samples < 2 {
		samples = DefaultCurveSamples
	}
	curveX := floats.Span(make([]float64, samples), xMin, xMax)
	curveY := make([]float64, samples)
	for i, cx := range curveX {
		curveY[i] = math.Exp(intercept + slope*cx)
	}

	rSquared := 1.0 // constant times are matched exactly by a flat line
	if stat.Variance(y, nil) > 0 {
		rSquared = stat.RSquared(x, y, nil, intercept, slope)
	}

	ts := make([]float64, n)
	copy(ts, times)

	return &FitResult{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  rSquared,
		X:         x,
		Times:     ts,
		CurveX:    curveX,
		CurveY:    curveY,
	}, nil
}

// Analyze runs the regression over a loaded measurement set.
func Analyze(set *parser.MeasurementSet, opts Options) (*FitResult, error) {
	if set == nil {
		return nil, &InsufficientDataError{Reason: "no measurements loaded"}
	}
	return FitLogLog(set.QValues(), set.Times(), opts)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
