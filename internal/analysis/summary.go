package analysis

import (
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/user/schoof_perf_go/internal/parser"
)

// SummarizeByBits groups the measurements by bit length of q, ascending.
// The perf harness draws several random primes per bit size, so each group is one trial batch.
func SummarizeByBits(set *parser.MeasurementSet) ([]BitSummary, error) {
	if set == nil || set.Len() == 0 {
		return []BitSummary{}, nil
	}

	groups := make(map[int][]float64)
	for _, m := range set.Measurements {
		groups[m.Bits()] = append(groups[m.Bits()], m.Time)
	}

	bits := make([]int, 0, len(groups))
	for b := range groups {
		bits = append(bits, b)
	}
	sort.Ints(bits)

	summaries := make([]BitSummary, 0, len(bits))
	for _, b := range bits {
		data := stats.Float64Data(groups[b])

		mean, err := data.Mean()
		if err != nil {
			return nil, fmt.Errorf("mean for %d-bit primes: %w", b, err)
		}
		median, err := data.Median()
		if err != nil {
			return nil, fmt.Errorf("median for %d-bit primes: %w", b, err)
		}
		minVal, err := data.Min()
		if err != nil {
			return nil, fmt.Errorf("min for %d-bit primes: %w", b, err)
		}
		maxVal, err := data.Max()
		if err != nil {
			return nil, fmt.Errorf("max for %d-bit primes: %w", b, err)
		}
		stdDev, err := data.StandardDeviation()
		if err != nil {
			return nil, fmt.Errorf("std dev for %d-bit primes: %w", b, err)
		}

		summaries = append(summaries, BitSummary{
			Bits:   b,
			Count:  data.Len(),
			Mean:   mean,
			Median: median,
			Min:    minVal,
			Max:    maxVal,
			StdDev: stdDev,
		})
	}
	return summaries, nil
}
