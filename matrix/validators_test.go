// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) *matrix.Dense[float64] {
		m, err := matrix.NewZeros[float64](r, c, matrix.RowMajor)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.Dense[float64]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateMulCompatible(t *testing.T) {
	a, err := matrix.NewZeros[int](2, 3, matrix.RowMajor)
	require.NoError(t, err)
	b, err := matrix.NewZeros[int](3, 4, matrix.ColumnMajor)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(b, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
}

func TestValidateSquare(t *testing.T) {
	sq, err := matrix.NewIdentity[float32](3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(sq))

	wide, err := matrix.NewZeros[float32](2, 3, matrix.RowMajor)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquare[float32](nil), matrix.ErrNilMatrix)
}
