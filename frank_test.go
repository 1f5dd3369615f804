package bicop

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrank_Debye1KnownValues(t *testing.T) {
	// D1(x) reference values (Abramowitz & Stegun style expansions).
	cases := []struct {
		x    float64
		want float64
	}{
		{0.1, 0.975278},
		{1.0, 0.777505},
		{2.0, 0.606947},
		{5.0, 0.321115},
		{10.0, 0.164443},
	}
	for _, tc := range cases {
		got := debye1(tc.x)
		assert.True(t, almostEqual(got, tc.want, 1e-5),
			"D1(%v): want %v, got %v", tc.x, tc.want, got)
	}

	// Past the cutoff the integral saturates at pi^2/6.
	assert.True(t, almostEqual(debye1(100)*100, math.Pi*math.Pi/6, 1e-9))
}

func TestFrank_ThetaTauRoundTrip(t *testing.T) {
	v := frankCopula{}
	for _, tau := range []float64{0.05, 0.1, 0.3, 0.5, 0.7, 0.9, 0.99} {
		theta, err := v.ThetaFromTau(tau)
		require.NoError(t, err, "tau %v", tau)
		require.Greater(t, theta, 0.0)

		back := frankTau(theta)
		assert.True(t, almostEqual(back, tau, 1e-6),
			"tau %v -> theta %v -> tau %v", tau, theta, back)
	}

	t.Logf("✓ Numeric inversion round-trips tau to 1e-6")
}

func TestFrank_ThetaOddInTau(t *testing.T) {
	v := frankCopula{}
	for _, tau := range []float64{0.2, 0.5, 0.8} {
		pos, err := v.ThetaFromTau(tau)
		require.NoError(t, err)
		neg, err := v.ThetaFromTau(-tau)
		require.NoError(t, err)
		assert.Equal(t, pos, -neg, "theta(tau) must be odd, tau %v", tau)
	}
}

func TestFrank_ThetaFromTauBoundary(t *testing.T) {
	v := frankCopula{}
	for _, tau := range []float64{1, -1, 1.3, nan()} {
		_, err := v.ThetaFromTau(tau)
		assert.True(t, errors.Is(err, ErrInvalidParameter), "tau %v: %v", tau, err)
	}

	theta, err := v.ThetaFromTau(0)
	require.NoError(t, err)
	assert.Zero(t, theta, "tau 0 maps to the forbidden theta 0")
}

func TestFrank_CumulativeDensityProperties(t *testing.T) {
	v := frankCopula{}
	grid := []float64{0.1, 0.25, 0.5, 0.75, 0.9}
	ones := []float64{1, 1, 1, 1, 1}
	zeros := []float64{0, 0, 0, 0, 0}

	for _, theta := range []float64{-4, 2, 10} {
		cu := v.CumulativeDensity(grid, ones, theta)
		c0 := v.CumulativeDensity(grid, zeros, theta)
		for i, z := range grid {
			assert.True(t, almostEqual(cu[i], z, 1e-9),
				"theta %v: C(%v, 1) = %v", theta, z, cu[i])
			assert.True(t, almostEqual(c0[i], 0, 1e-9),
				"theta %v: C(%v, 0) = %v", theta, z, c0[i])
		}
	}
}

func TestFrank_PercentPointInvertsConditional(t *testing.T) {
	v := frankCopula{}

	y := []float64{0.05, 0.2, 0.5, 0.8, 0.95}
	cond := []float64{0.3, 0.5, 0.5, 0.7, 0.9}

	for _, theta := range []float64{-6.0, 4.0, 12.0} {
		u := v.PercentPoint(y, cond, theta)
		back := v.PartialDerivative(u, cond, theta, 0)
		for i := range y {
			assert.True(t, almostEqual(back[i], y[i], 1e-8),
				"theta %v: C(u|v) at inverted u: want %v, got %v", theta, y[i], back[i])
		}
	}

	t.Logf("✓ Bisection inversion consistent for negative and positive theta")
}

func TestFrank_DensityPositive(t *testing.T) {
	v := frankCopula{}
	grid := []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	for _, theta := range []float64{-5, 1, 5} {
		for _, pdf := range v.ProbabilityDensity(grid, grid, theta) {
			assert.Greater(t, pdf, 0.0, "theta %v", theta)
		}
	}
}

func TestFrank_PartialDerivativeIsConditionalCDF(t *testing.T) {
	// C(u|v) must run from 0 to 1 as u does, monotonically.
	v := frankCopula{}
	theta := 6.0
	cond := 0.4

	prev := 0.0
	for _, u := range []float64{1e-6, 0.1, 0.3, 0.5, 0.7, 0.9, 1 - 1e-6} {
		p := v.PartialDerivative([]float64{u}, []float64{cond}, theta, 0)[0]
		assert.GreaterOrEqual(t, p, prev, "C(u|v) must be monotone in u")
		prev = p
	}
	assert.True(t, almostEqual(prev, 1, 1e-4), "C(1|v) = %v", prev)
}
