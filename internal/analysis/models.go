package analysis

import (
	"fmt"
	"math"
)

// DefaultCurveSamples is how many points of the fitted line are sampled for plotting.
const DefaultCurveSamples = 200

// Options tunes the analysis.
type Options struct {
	CurveSamples int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{CurveSamples: DefaultCurveSamples}
}

// FitResult holds the log-log regression and the data it was computed from.
// The model is ln(time) = Intercept + Slope*ln(ln(q)).
type FitResult struct {
	Slope     float64
	Intercept float64
	RSquared  float64

	X     []float64 // ln(ln(q)) per measurement
	Times []float64 // elapsed seconds per measurement, aligned with X

	CurveX []float64 // evenly spaced over [min(X), max(X)]
	CurveY []float64 // exp(Intercept + Slope*CurveX)
}

// Predict evaluates the fitted model at q, in seconds.
func (r *FitResult) Predict(q float64) float64 {
	return math.Exp(r.Intercept + r.Slope*math.Log(math.Log(q)))
}

// NumPoints returns the number of measurements used by the fit.
func (r *FitResult) NumPoints() int {
	return len(r.X)
}

// BitSummary aggregates the timings recorded for primes of one bit size.
type BitSummary struct {
	Bits   int
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64
}

// InsufficientDataError means the regression is undefined for the given data.
type InsufficientDataError struct {
	Points int
	Reason string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for regression (%d points): %s", e.Points, e.Reason)
}
