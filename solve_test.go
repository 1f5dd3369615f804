package bicop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBisect_FindsRoot(t *testing.T) {
	root := bisect(func(x float64) float64 { return x*x - 2 }, 0, 2)
	assert.True(t, almostEqual(root, math.Sqrt2, 1e-12), "got %v", root)
}

func TestBisect_ClampsToBracket(t *testing.T) {
	// Root below the bracket: nearest endpoint.
	lo := bisect(func(x float64) float64 { return x }, 1, 2)
	assert.Equal(t, 1.0, lo)

	// Root above the bracket: nearest endpoint.
	hi := bisect(func(x float64) float64 { return x - 5 }, 1, 2)
	assert.Equal(t, 2.0, hi)
}

func TestInvertConditional_Identity(t *testing.T) {
	// With C(u|v) = u the inversion returns y itself.
	for _, y := range []float64{0.1, 0.5, 0.9} {
		u := invertConditional(func(u float64) float64 { return u }, y)
		assert.True(t, almostEqual(u, y, 1e-10), "y %v -> u %v", y, u)
	}
}
