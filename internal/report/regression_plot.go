package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/user/schoof_perf_go/internal/analysis"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ChartOptions controls the size and encoding of the rendered chart.
type ChartOptions struct {
	Width  vg.Length
	Height vg.Length
	Format string // any format accepted by plot.WriterTo: png, svg, pdf, ...
}

// DefaultChartOptions matches an 8x5 inch figure.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{Width: 8 * vg.Inch, Height: 5 * vg.Inch, Format: "png"}
}

var (
	pointColor = color.NRGBA{R: 31, G: 119, B: 180, A: 179} // 70% opaque
	fitColor   = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	gridColor  = color.Gray{Y: 176}
)

// ChartTitle builds the two line chart title from the header parameters.
func ChartTitle(paramStr string) string {
	return fmt.Sprintf("Schoof algorithm execution time, logarithmic scale\n%s", paramStr)
}

// FitLabel is the legend entry of the regression line.
func FitLabel(slope float64) string {
	return fmt.Sprintf("Linear regression (slope = %.4f)", slope)
}

// CreateRegressionPlot renders the measured points and the fitted line on a log-scaled time axis
// and returns the encoded image. Nothing is written to disk.
func CreateRegressionPlot(result *analysis.FitResult, paramStr string, opts ChartOptions) ([]byte, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultChartOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.Format == "" {
		opts.Format = "png"
	}

	p, err := newRegressionPlot(result, paramStr)
	if err != nil {
		return nil, err
	}

	writer, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// newRegressionPlot assembles the chart without encoding it.
func newRegressionPlot(result *analysis.FitResult, paramStr string) (*plot.Plot, error) {
	if result == nil || result.NumPoints() == 0 {
		return nil, fmt.Errorf("no fit result to plot")
	}
	if len(result.CurveX) != len(result.CurveY) {
		return nil, fmt.Errorf("regression curve is malformed: %d x values, %d y values", len(result.CurveX), len(result.CurveY))
	}

	p := plot.New()
	p.Title.Text = ChartTitle(paramStr)
	p.X.Label.Text = "log(log q)"
	p.Y.Label.Text = "Execution time (s)"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = timeTicks{}

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Vertical.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	grid.Horizontal.Color = gridColor
	grid.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(grid)

	pts := make(plotter.XYs, 0, result.NumPoints())
	for i, x := range result.X {
		pts = append(pts, plotter.XY{X: x, Y: result.Times[i]})
	}
	if err := checkLogAxis(pts); err != nil {
		return nil, fmt.Errorf("measured points: %w", err)
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to create scatter: %w", err)
	}
	scatter.GlyphStyle.Color = pointColor
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)

	line, err := newRegressionLine(result)
	if err != nil {
		return nil, err
	}

	p.Add(scatter, line)
	p.Legend.Add("test-perf results", scatter)
	p.Legend.Add(FitLabel(result.Slope), line)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.XOffs = vg.Points(10)
	p.Legend.YOffs = -vg.Points(5)

	return p, nil
}

// newRegressionLine draws the fitted curve as a dashed orange line.
func newRegressionLine(result *analysis.FitResult) (*plotter.Line, error) {
	curve := make(plotter.XYs, len(result.CurveX))
	for i := range result.CurveX {
		curve[i] = plotter.XY{X: result.CurveX[i], Y: result.CurveY[i]}
	}
	if err := checkLogAxis(curve); err != nil {
		return nil, fmt.Errorf("regression curve: %w", err)
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, fmt.Errorf("failed to create regression line: %w", err)
	}
	line.LineStyle.Color = fitColor
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	return line, nil
}

// checkLogAxis rejects values plot.LogScale cannot place.
func checkLogAxis(xys plotter.XYs) error {
	for i, xy := range xys {
		if xy.Y <= 0 || math.IsInf(xy.Y, 0) || math.IsNaN(xy.Y) {
			return fmt.Errorf("point %d has time %g, which a log axis cannot show", i, xy.Y)
		}
	}
	return nil
}
