package report

import (
	"strconv"

	"gonum.org/v1/plot"
)

// timeTicks is plot.LogTicks that labels minor ticks too when the data spans less
// than a decade, so the time axis is never left without labels.
type timeTicks struct{}

// Ticks implements plot.Ticker.
func (timeTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.LogTicks{Prec: -1}.Ticks(min, max)
	if labeledWithin(ticks, min, max) >= 2 {
		return ticks
	}

	minorLabeled := make([]plot.Tick, len(ticks))
	copy(minorLabeled, ticks)
	for i := range minorLabeled {
		if minorLabeled[i].Label == "" && minorLabeled[i].Value >= min && minorLabeled[i].Value <= max {
			minorLabeled[i].Label = formatTick(minorLabeled[i].Value)
		}
	}
	if labeledWithin(minorLabeled, min, max) >= 2 {
		return minorLabeled
	}

	// Narrower than the gap between two minor ticks: label the ends of the range.
	return append(ticks,
		plot.Tick{Value: min, Label: formatTick(min)},
		plot.Tick{Value: max, Label: formatTick(max)},
	)
}

func labeledWithin(ticks []plot.Tick, min, max float64) int {
	n := 0
	for _, t := range ticks {
		if t.Label != "" && t.Value >= min && t.Value <= max {
			n++
		}
	}
	return n
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 3, 64)
}
