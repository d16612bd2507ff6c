// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/densemat/matrix"
)

// runDemo prints a few small products next to their operands.
func runDemo(w io.Writer) error {
	id, err := matrix.NewIdentity[float32](3)
	if err != nil {
		return err
	}
	a, err := matrix.NewFromRows([][]float32{{.1, .2, .3}, {.4, .5, .6}}, matrix.RowMajor)
	if err != nil {
		return err
	}
	b, err := matrix.NewFromRows([][]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, matrix.RowMajor)
	if err != nil {
		return err
	}

	for _, m := range []struct {
		label string
		m     *matrix.Dense[float32]
	}{{"ID", id}, {"A", a}, {"B", b}} {
		fmt.Fprintf(w, "%s:\n%s\n", m.label, m.m)
	}

	for _, p := range []struct {
		label string
		l, r  *matrix.Dense[float32]
	}{
		{"A*ID", a, id},
		{"B*ID", b, id},
		{"ID*B", id, b},
		{"A*B", a, b},
		{"B^2", b, b},
	} {
		c, err := matrix.Mul(p.l, p.r)
		if err != nil {
			return fmt.Errorf("%s: %w", p.label, err)
		}
		fmt.Fprintf(w, "%s:\n%s\n", p.label, c)
	}

	return nil
}
