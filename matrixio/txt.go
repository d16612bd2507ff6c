// SPDX-License-Identifier: MIT
// Package matrixio: numpy savetxt text format.
//
// A fixture file starts with a header line "# RxC" followed by whitespace
// separated rows, one matrix row per line:
//
//	# 2x3
//	1.000000000000000000e+00 2.000000000000000000e+00 3.000000000000000000e+00
//	4.000000000000000000e+00 5.000000000000000000e+00 6.000000000000000000e+00
//
// Square case files stack A, B and C = A×B (each RxR) under one header.

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/numeric"
)

const (
	headerPrefix = "#"
	valueFormat  = "%.18e"
)

// ParseHeader parses "# RxC" into its dimensions. Both must be >= 1.
func ParseHeader(line string) (rows, cols int, err error) {
	body, ok := strings.CutPrefix(strings.TrimSpace(line), headerPrefix)
	if !ok {
		return 0, 0, fmt.Errorf("%w: header %q lacks %q", ErrMalformed, line, headerPrefix)
	}
	rs, cs, ok := strings.Cut(strings.TrimSpace(body), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: header %q is not RxC", ErrMalformed, line)
	}
	if rows, err = strconv.Atoi(rs); err != nil || rows < 1 {
		return 0, 0, fmt.Errorf("%w: header %q rows", ErrMalformed, line)
	}
	if cols, err = strconv.Atoi(cs); err != nil || cols < 1 {
		return 0, 0, fmt.Errorf("%w: header %q cols", ErrMalformed, line)
	}

	return rows, cols, nil
}

// ParseValues parses one whitespace separated row. Values are read as
// float64 (any strconv.ParseFloat syntax, including %e) and converted to T.
func ParseValues[T numeric.Number](line string) ([]T, error) {
	fields := strings.Fields(line)
	out := make([]T, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: value %q: %v", ErrMalformed, f, err)
		}
		out[i] = T(v)
	}

	return out, nil
}

// parseBlock reads rows×cols values from lines into a RowMajor matrix.
func parseBlock[T numeric.Number](lines []string, rows, cols int) (*matrix.Dense[T], error) {
	if len(lines) != rows {
		return nil, fmt.Errorf("%w: %d rows, header says %d", ErrMalformed, len(lines), rows)
	}
	data := make([]T, 0, rows*cols)
	for i, line := range lines {
		vals, err := ParseValues[T](line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if len(vals) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, header says %d", ErrMalformed, i, len(vals), cols)
		}
		data = append(data, vals...)
	}

	return matrix.NewFromData(rows, cols, data, matrix.RowMajor)
}

// dataLines drops blank lines after the header.
func dataLines(lines []string) []string {
	out := lines[:0:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}

	return out
}

// ReadMatrix reads a single-matrix fixture file into a RowMajor Dense.
func ReadMatrix[T numeric.Number](path string) (*matrix.Dense[T], error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("ReadMatrix(%q): %w: empty file", path, ErrMalformed)
	}
	rows, cols, err := ParseHeader(lines[0])
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix(%q): %w", path, err)
	}
	m, err := parseBlock[T](dataLines(lines[1:]), rows, cols)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix(%q): %w", path, err)
	}

	return m, nil
}

// WriteTxt writes ms stacked under one header taken from the first matrix.
// All matrices must share its column count. Elements are written in logical
// order with %.18e, so ReadMatrix round-trips float64 exactly.
// A nil or mismatched matrix is reported before anything is written.
func WriteTxt[T numeric.Number](w io.Writer, ms ...*matrix.Dense[T]) error {
	if len(ms) == 0 || ms[0] == nil {
		return fmt.Errorf("WriteTxt: %w", matrix.ErrNilMatrix)
	}
	rows, cols := ms[0].Shape()
	for k, m := range ms[1:] {
		if m == nil {
			return fmt.Errorf("WriteTxt: matrix %d: %w", k+1, matrix.ErrNilMatrix)
		}
		if m.Cols() != cols {
			return fmt.Errorf("WriteTxt: matrix %d: %w", k+1, matrix.ErrDimensionMismatch)
		}
	}

	// Nothing reaches w until every matrix has been validated.
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %dx%d\n", headerPrefix, rows, cols)
	for _, m := range ms {
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < cols; j++ {
				v, err := m.At(i, j)
				if err != nil {
					return fmt.Errorf("WriteTxt: %w", err)
				}
				if j > 0 {
					bw.WriteByte(' ')
				}
				fmt.Fprintf(bw, valueFormat, float64(v))
			}
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}
