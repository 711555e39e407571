package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ParseRow decides whether a data row belongs in the measurement set.
// A row is kept iff it has at least DataFields fields, field 0 is an integer q > 1
// and field 3 is a finite float time > 0. Anything else is rejected without error.
func ParseRow(fields []string) (Measurement, bool) {
	if len(fields) < DataFields {
		return Measurement{}, false
	}

	q, ok := new(big.Int).SetString(strings.TrimSpace(fields[0]), 10)
	if !ok {
		return Measurement{}, false
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil || math.IsInf(t, 0) || math.IsNaN(t) {
		return Measurement{}, false
	}

	if q.Cmp(big.NewInt(1)) <= 0 || t <= 0 {
		return Measurement{}, false
	}
	return Measurement{Q: q, A: fields[1], B: fields[2], Time: t}, true
}

// isColumnHeader reports whether row names the data columns instead of holding a measurement.
func isColumnHeader(row []string) bool {
	if len(row) < DataFields {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
	return err != nil
}

// pairParams zips the name and value rows, truncating to the shorter one.
func pairParams(names, values []string) []Param {
	n := len(names)
	if len(values) < n {
		n = len(values)
	}
	params := make([]Param, 0, n)
	for i := 0; i < n; i++ {
		params = append(params, Param{Name: names[i], Value: values[i]})
	}
	return params
}

// LoadMeasurements opens a Schoof perf results file and parses it.
// The first two rows are the parameter header; every following row is a candidate measurement.
func LoadMeasurements(filepath string) (*MeasurementSet, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, &FileAccessError{Path: filepath, Err: err}
	}
	defer file.Close()

	set, err := ReadMeasurements(file)
	if err != nil {
		return nil, &FileAccessError{Path: filepath, Err: err}
	}
	log.WithFields(log.Fields{
		"path":    filepath,
		"kept":    set.Len(),
		"skipped": set.SkippedRows,
	}).Debug("loaded measurements")
	return set, nil
}

// ReadMeasurements parses results from r. Only I/O failures are returned as errors;
// malformed rows are counted in SkippedRows and otherwise ignored.
func ReadMeasurements(r io.Reader) (*MeasurementSet, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // data rows are validated by ParseRow
	reader.LazyQuotes = true

	set := NewMeasurementSet()
	var paramNames []string
	rowIdx := 0

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("failed to read CSV data: %w", err)
			}
			// A syntax error only costs the offending line.
			if rowIdx >= 2 {
				set.SkippedRows++
			}
			rowIdx++
			continue
		}

		switch rowIdx {
		case 0:
			paramNames = row
		case 1:
			set.Params = pairParams(paramNames, row)
		default:
			if m, ok := ParseRow(row); ok {
				set.Measurements = append(set.Measurements, m)
			} else if rowIdx == 2 && isColumnHeader(row) {
				set.ColumnNames = row
			} else {
				set.SkippedRows++
			}
		}
		rowIdx++
	}

	return set, nil
}
