package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densemat/numeric"
	"github.com/stretchr/testify/require"
)

type celsius float64

func TestIdentities(t *testing.T) {
	require.Equal(t, 0, numeric.Zero[int]())
	require.Equal(t, 1.0, numeric.One[float64]())
	require.Equal(t, uint8(1), numeric.One[uint8]())
}

func TestIsFloat(t *testing.T) {
	require.True(t, numeric.IsFloat[float32]())
	require.True(t, numeric.IsFloat[float64]())
	require.True(t, numeric.IsFloat[celsius]())
	require.False(t, numeric.IsFloat[int]())
	require.False(t, numeric.IsFloat[uint64]())
}

func TestEpsilon(t *testing.T) {
	require.Equal(t, math.Pow(2, -23), numeric.Epsilon[float32]())
	require.Equal(t, math.Pow(2, -52), numeric.Epsilon[float64]())
	require.Zero(t, numeric.Epsilon[int]())
}

func TestAbsMax(t *testing.T) {
	require.Equal(t, 3, numeric.Abs(-3))
	require.Equal(t, 2.5, numeric.Abs(2.5))
	require.Equal(t, uint(7), numeric.Abs(uint(7)))
	require.Equal(t, 4, numeric.Max(4, -9))
}

func TestAreEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		want bool
	}{
		{"identical", 1.5, 1.5, true},
		{"one ulp", 1.0, math.Nextafter(1, 2), true},
		{"near zero floor", 0, 1e-17, true},
		{"clearly apart", 1.0, 1.0001, false},
		{"large magnitude scaled", 1e12, 1e12 + 1e-4, true},
		{"nan", math.NaN(), math.NaN(), false},
		{"equal infinities", math.Inf(1), math.Inf(1), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, numeric.AreEqual(tc.a, tc.b, numeric.DefaultEpsilonFactor))
		})
	}
}

func TestAreEqualFloat32UsesSinglePrecision(t *testing.T) {
	a := float32(0.1)
	b := a + float32(math.Pow(2, -26)) // a fraction of float32 eps at this magnitude
	require.True(t, numeric.AreEqual(a, b, numeric.DefaultEpsilonFactor))
	require.False(t, numeric.AreEqual(float32(1), float32(1.001), numeric.DefaultEpsilonFactor))
}

func TestAreEqualIntegersExact(t *testing.T) {
	require.True(t, numeric.AreEqual(7, 7, numeric.DefaultEpsilonFactor))
	require.False(t, numeric.AreEqual(7, 8, 1e9))
}

func TestComparator(t *testing.T) {
	c := numeric.NewComparator[float64]()
	require.Equal(t, numeric.DefaultEpsilonFactor, c.Factor)
	x, y := 0.1, 0.2 // runtime sum; a constant 0.1+0.2 folds to exactly 0.3
	require.True(t, c.Equal(x+y, 0.3))

	strict := numeric.Comparator[float64]{Factor: 0}
	require.False(t, strict.Equal(x+y, 0.3))
}
