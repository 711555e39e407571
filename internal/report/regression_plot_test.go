package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	"github.com/user/schoof_perf_go/internal/analysis"
	"github.com/user/schoof_perf_go/internal/parser"
)

const harnessCSV = `NUM_TRIALS,MIN_BITS,MAX_BITS
2,8,9
q,a,b,time (s)
251,1,2,0.0011
241,1,2,0.0013
257,1,2,0.0019
509,1,2,0.0021
`

func loadFit(t *testing.T) (*parser.MeasurementSet, *analysis.FitResult) {
	t.Helper()
	set, err := parser.ReadMeasurements(strings.NewReader(harnessCSV))
	require.NoError(t, err)
	res, err := analysis.Analyze(set, analysis.DefaultOptions())
	require.NoError(t, err)
	return set, res
}

func TestFitLabel(t *testing.T) {
	assert.Equal(t, "Linear regression (slope = 3.1416)", FitLabel(3.14159265))
	assert.Equal(t, "Linear regression (slope = -0.5000)", FitLabel(-0.5))
}

func TestChartTitle(t *testing.T) {
	title := ChartTitle("q=101, reps=5")
	assert.True(t, strings.HasSuffix(title, "\nq=101, reps=5"))
}

func TestCreateRegressionPlotPNG(t *testing.T) {
	set, res := loadFit(t)
	img, err := CreateRegressionPlot(res, set.ParamString(), DefaultChartOptions())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, []byte("\x89PNG")))
}

func TestCreateRegressionPlotSVG(t *testing.T) {
	set, res := loadFit(t)
	opts := DefaultChartOptions()
	opts.Format = "svg"
	img, err := CreateRegressionPlot(res, set.ParamString(), opts)
	require.NoError(t, err)
	assert.Contains(t, string(img), "<svg")
}

func TestCreateRegressionPlotDrawsChartElements(t *testing.T) {
	set, res := loadFit(t)
	opts := DefaultChartOptions()
	opts.Format = "svg"
	img, err := CreateRegressionPlot(res, set.ParamString(), opts)
	require.NoError(t, err)

	svg := string(img)
	assert.Contains(t, svg, "Schoof algorithm execution time, logarithmic scale")
	assert.Contains(t, svg, "NUM_TRIALS=2, MIN_BITS=8, MAX_BITS=9")
	assert.Contains(t, svg, FitLabel(res.Slope))
	assert.Contains(t, svg, "test-perf results")
	assert.Contains(t, svg, "log(log q)")
	assert.Contains(t, svg, "Execution time (s)")
	assert.Contains(t, svg, "stroke-dasharray")
}

func TestNewRegressionPlotAxes(t *testing.T) {
	set, res := loadFit(t)
	p, err := newRegressionPlot(res, set.ParamString())
	require.NoError(t, err)

	assert.IsType(t, plot.LogScale{}, p.Y.Scale)
	assert.IsType(t, plot.LinearScale{}, p.X.Scale)
	assert.IsType(t, timeTicks{}, p.Y.Tick.Marker)
	assert.Equal(t, ChartTitle(set.ParamString()), p.Title.Text)
	assert.True(t, p.Legend.Top)
}

func TestNewRegressionLineIsDashed(t *testing.T) {
	_, res := loadFit(t)
	line, err := newRegressionLine(res)
	require.NoError(t, err)

	assert.NotEmpty(t, line.LineStyle.Dashes)
	assert.Equal(t, fitColor, line.LineStyle.Color)
	assert.Equal(t, len(res.CurveX), line.XYs.Len())
}

func TestCreateRegressionPlotDefaultsSize(t *testing.T) {
	set, res := loadFit(t)
	img, err := CreateRegressionPlot(res, set.ParamString(), ChartOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, img)
}

func TestCreateRegressionPlotRejectsBadInput(t *testing.T) {
	_, err := CreateRegressionPlot(nil, "", DefaultChartOptions())
	assert.Error(t, err)

	_, res := loadFit(t)
	res.CurveY[0] = 0
	_, err = CreateRegressionPlot(res, "", DefaultChartOptions())
	assert.Error(t, err)
}

func TestRenderSummary(t *testing.T) {
	set, res := loadFit(t)
	rows, err := analysis.SummarizeByBits(set)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, set, res, rows))
	out := buf.String()
	assert.Contains(t, out, "NUM_TRIALS=2, MIN_BITS=8, MAX_BITS=9")
	assert.Contains(t, out, "4 kept, 0 skipped")
	assert.Contains(t, out, "median (s)")
	assert.Contains(t, out, "0.0012")
	assert.Contains(t, out, "0.002")

	assert.Error(t, RenderSummary(&buf, nil, res, rows))
}
