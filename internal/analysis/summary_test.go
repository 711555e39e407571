package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/schoof_perf_go/internal/parser"
)

func TestSummarizeByBits(t *testing.T) {
	content := `NUM_TRIALS,MIN_BITS,MAX_BITS
3,8,9
q,a,b,time (s)
257,1,2,0.004
263,1,2,0.002
509,1,2,0.006
251,1,2,0.001
241,1,2,0.003
`
	set, err := parser.ReadMeasurements(strings.NewReader(content))
	require.NoError(t, err)

	rows, err := SummarizeByBits(set)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 8, rows[0].Bits)
	assert.Equal(t, 2, rows[0].Count)
	assert.InDelta(t, 0.002, rows[0].Mean, 1e-12)
	assert.InDelta(t, 0.001, rows[0].Min, 1e-12)
	assert.InDelta(t, 0.003, rows[0].Max, 1e-12)
	assert.InDelta(t, 0.001, rows[0].StdDev, 1e-12)

	assert.Equal(t, 9, rows[1].Bits)
	assert.Equal(t, 3, rows[1].Count)
	assert.InDelta(t, 0.004, rows[1].Mean, 1e-12)
	assert.InDelta(t, 0.004, rows[1].Median, 1e-12)
	assert.InDelta(t, 0.002, rows[1].Min, 1e-12)
	assert.InDelta(t, 0.006, rows[1].Max, 1e-12)
}

func TestSummarizeByBitsEmpty(t *testing.T) {
	rows, err := SummarizeByBits(parser.NewMeasurementSet())
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = SummarizeByBits(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
