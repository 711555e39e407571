package parser

import (
	"fmt"
	"math/big"
	"strings"
)

// DataFields is the number of fields a measurement row must carry: q, a, b, elapsed time.
const DataFields = 4

// DefaultInputPath is where the perf test harness writes its results.
const DefaultInputPath = "./results/results_perf.csv"

// Param is one entry of the two-row parameter header (e.g. NUM_TRIALS=5).
type Param struct {
	Name  string
	Value string
}

// Measurement is a single retained timing row.
type Measurement struct {
	Q    *big.Int // field size, arbitrary precision since 64-bit primes overflow int64
	A    string   // curve coefficient, carried but unused
	B    string   // curve coefficient, carried but unused
	Time float64  // elapsed seconds
}

// Bits returns the bit length of q.
func (m Measurement) Bits() int {
	return m.Q.BitLen()
}

// QFloat returns q as a float64, rounded to nearest.
func (m Measurement) QFloat() float64 {
	f, _ := new(big.Float).SetInt(m.Q).Float64()
	return f
}

// MeasurementSet holds everything the loader extracted from one results file.
type MeasurementSet struct {
	Params       []Param
	ColumnNames  []string // "q,a,b,time (s)" row written by the harness, if present
	Measurements []Measurement
	SkippedRows  int // data rows dropped by ParseRow
}

// NewMeasurementSet returns an empty set.
func NewMeasurementSet() *MeasurementSet {
	return &MeasurementSet{
		Params:       make([]Param, 0),
		Measurements: make([]Measurement, 0),
	}
}

// ParamString renders the header as "name=value" pairs joined by ", ".
func (s *MeasurementSet) ParamString() string {
	parts := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		parts = append(parts, fmt.Sprintf("%s=%s", p.Name, p.Value))
	}
	return strings.Join(parts, ", ")
}

// QValues returns q for every retained row, in file order.
func (s *MeasurementSet) QValues() []float64 {
	qs := make([]float64, len(s.Measurements))
	for i, m := range s.Measurements {
		qs[i] = m.QFloat()
	}
	return qs
}

// Times returns the elapsed time for every retained row, aligned with QValues.
func (s *MeasurementSet) Times() []float64 {
	ts := make([]float64, len(s.Measurements))
	for i, m := range s.Measurements {
		ts[i] = m.Time
	}
	return ts
}

// Len returns the number of retained measurements.
func (s *MeasurementSet) Len() int {
	return len(s.Measurements)
}

// FileAccessError reports that the results file could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read results file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
