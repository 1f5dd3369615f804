package bicop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestClayton_ThetaTauRoundTrip(t *testing.T) {
	// Clayton's closed forms are mutual inverses: tau = theta/(theta+2).
	v := claytonCopula{}
	for _, tau := range []float64{-0.9, -0.5, 0.1, 0.3, 0.5, 0.8, 0.95} {
		theta, err := v.ThetaFromTau(tau)
		require.NoError(t, err)
		back := theta / (theta + 2)
		assert.True(t, almostEqual(back, tau, 1e-12),
			"tau %v -> theta %v -> tau %v", tau, theta, back)
	}
}

func TestClayton_IntervalAndForbidden(t *testing.T) {
	v := claytonCopula{}
	lower, upper := v.Interval()
	assert.Equal(t, -1.0, lower)
	assert.Equal(t, math.MaxFloat64, upper)
	assert.Equal(t, []float64{0}, v.ForbiddenThetas())
}

func TestClayton_CumulativeDensityProperties(t *testing.T) {
	v := claytonCopula{}
	theta := 2.0 // tau = 0.5

	// Uniform margins: C(u, 1) = u and C(1, v) = v.
	grid := []float64{0.1, 0.25, 0.5, 0.75, 0.9}
	ones := []float64{1, 1, 1, 1, 1}
	cu := v.CumulativeDensity(grid, ones, theta)
	cv := v.CumulativeDensity(ones, grid, theta)
	for i, z := range grid {
		assert.True(t, almostEqual(cu[i], z, 1e-12), "C(%v, 1) = %v", z, cu[i])
		assert.True(t, almostEqual(cv[i], z, 1e-12), "C(1, %v) = %v", z, cv[i])
	}

	// Zero coordinate pins the copula at zero.
	zeros := []float64{0, 0, 0, 0, 0}
	for _, c := range v.CumulativeDensity(zeros, grid, theta) {
		assert.Zero(t, c)
	}

	// 2-increasing on the diagonal: C(z,z) grows with z.
	diag := v.CumulativeDensity(grid, grid, theta)
	for i := 1; i < len(diag); i++ {
		assert.Greater(t, diag[i], diag[i-1])
	}
}

func TestClayton_PercentPointInvertsConditional(t *testing.T) {
	v := claytonCopula{}
	theta := 3.0

	y := []float64{0.05, 0.2, 0.5, 0.8, 0.95}
	cond := []float64{0.3, 0.3, 0.5, 0.7, 0.9}

	u := v.PercentPoint(y, cond, theta)
	back := v.PartialDerivative(u, cond, theta, 0)
	for i := range y {
		assert.True(t, almostEqual(back[i], y[i], 1e-9),
			"C(u|v) at inverted u: want %v, got %v", y[i], back[i])
	}

	t.Logf("✓ Closed-form inversion consistent at theta = %v", theta)
}

func TestClayton_NegativeThetaPercentPointPassthrough(t *testing.T) {
	v := claytonCopula{}
	y := []float64{0.1, 0.6, 0.9}
	cond := []float64{0.4, 0.5, 0.6}

	u := v.PercentPoint(y, cond, -0.5)
	assert.Equal(t, cond, u, "theta < 0 passes the conditioning values through")
}

func TestClayton_DensityPositive(t *testing.T) {
	v := claytonCopula{}
	grid := []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	for _, theta := range []float64{0.5, 2, 8} {
		for _, pdf := range v.ProbabilityDensity(grid, grid, theta) {
			assert.Greater(t, pdf, 0.0, "theta %v", theta)
		}
	}
}

func TestClayton_GeneratorEndpoints(t *testing.T) {
	v := claytonCopula{}
	theta := 2.0
	psi := v.Generator([]float64{1, 0.5}, theta)
	assert.True(t, almostEqual(psi[0], 0, 1e-12), "psi(1) = %v", psi[0])
	assert.Greater(t, psi[1], 0.0, "psi is positive on (0,1)")
}
