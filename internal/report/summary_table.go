package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/user/schoof_perf_go/internal/analysis"
	"github.com/user/schoof_perf_go/internal/parser"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	headerStyle  = cellStyle.Bold(true)
)

// RenderSummary writes the fit and the per-bit timing summary as plain terminal text.
func RenderSummary(w io.Writer, set *parser.MeasurementSet, result *analysis.FitResult, rows []analysis.BitSummary) error {
	if set == nil || result == nil {
		return fmt.Errorf("nothing to summarize")
	}

	lines := []string{
		headingStyle.Render("Schoof algorithm execution time"),
		labelStyle.Render("parameters: ") + set.ParamString(),
		labelStyle.Render("points:     ") + fmt.Sprintf("%d kept, %d skipped", set.Len(), set.SkippedRows),
		labelStyle.Render("slope:      ") + fmt.Sprintf("%.4f", result.Slope),
		labelStyle.Render("intercept:  ") + fmt.Sprintf("%.4f", result.Intercept),
		labelStyle.Render("R^2:        ") + fmt.Sprintf("%.4f", result.RSquared),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	if len(rows) == 0 {
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("bits", "n", "mean (s)", "median (s)", "min (s)", "max (s)", "std dev (s)").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range rows {
		t.Row(
			strconv.Itoa(r.Bits),
			strconv.Itoa(r.Count),
			formatSeconds(r.Mean),
			formatSeconds(r.Median),
			formatSeconds(r.Min),
			formatSeconds(r.Max),
			formatSeconds(r.StdDev),
		)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
