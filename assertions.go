package bicop

import (
	"math"
	"testing"
)

// AssertionConfig contains numeric tolerances for copula properties.
type AssertionConfig struct {
	// Absolute tolerance for round-tripping tau through theta.
	TauTolerance float64

	// Maximum |C(u,v) - empirical| deviation accepted by curve checks.
	CurveTolerance float64
}

// DefaultAssertionConfig returns conservative tolerances.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		TauTolerance:   1e-6,
		CurveTolerance: 0.1,
	}
}

// AssertValidFit verifies a model is fitted and its theta respects the
// family's validity interval and forbidden values.
//
// This is the post-fit invariant of the package: a committed theta is
// never invalid.
func AssertValidFit(t *testing.T, c *Copula) {
	t.Helper()

	if !c.Fitted() {
		t.Fatalf("%s copula is not fitted", c.Family())
	}

	variant := variants[c.Family()]
	lower, upper := variant.Interval()
	theta := c.Theta()

	if !(lower <= theta && theta <= upper) {
		t.Errorf("theta %v outside [%v, %v] for %s copula", theta, lower, upper, c.Family())
	}
	for _, forbidden := range variant.ForbiddenThetas() {
		if theta == forbidden {
			t.Errorf("theta %v is a forbidden value for %s copula", theta, c.Family())
		}
	}
	if tau := c.Tau(); tau < -1 || tau > 1 {
		t.Errorf("tau %v outside [-1, 1] for %s copula", tau, c.Family())
	}

	t.Logf("✓ Valid fit: %s theta = %.6f (tau %.6f)", c.Family(), theta, c.Tau())
}

// AssertSampleShape verifies Sample(n) returns an n×2 matrix of finite
// values with both columns inside [0, 1].
func AssertSampleShape(t *testing.T, c *Copula, n int) {
	t.Helper()

	samples, err := c.Sample(n)
	if err != nil {
		t.Fatalf("Sample(%d) failed: %v", n, err)
	}

	rows, cols := samples.Dims()
	if n == 0 {
		if rows != 0 {
			t.Errorf("Sample(0) should be empty, got %d×%d", rows, cols)
		}
		return
	}
	if rows != n || cols != 2 {
		t.Fatalf("Sample(%d) returned %d×%d matrix, want %d×2", n, rows, cols, n)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < 2; j++ {
			x := samples.At(i, j)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				t.Fatalf("sample[%d][%d] = %v is not finite", i, j, x)
			}
			if x < 0 || x > 1 {
				t.Errorf("sample[%d][%d] = %v outside [0, 1]", i, j, x)
			}
		}
	}

	t.Logf("✓ Sample shape: %d×2, all values finite in [0, 1]", n)
}

// AssertRecordRoundTrip verifies that serializing and reconstructing the
// model preserves family, theta, and tau bit-for-bit.
func AssertRecordRoundTrip(t *testing.T, c *Copula) {
	t.Helper()

	restored, err := FromRecord(c.ToRecord())
	if err != nil {
		t.Fatalf("FromRecord failed: %v", err)
	}

	if restored.Family() != c.Family() {
		t.Errorf("family changed: %s -> %s", c.Family(), restored.Family())
	}
	if restored.Fitted() != c.Fitted() {
		t.Fatalf("fitted state changed: %v -> %v", c.Fitted(), restored.Fitted())
	}
	if c.Fitted() {
		if restored.Theta() != c.Theta() {
			t.Errorf("theta changed: %v -> %v", c.Theta(), restored.Theta())
		}
		if restored.Tau() != c.Tau() {
			t.Errorf("tau changed: %v -> %v", c.Tau(), restored.Tau())
		}
	}

	t.Logf("✓ Record round-trip exact for %s copula", c.Family())
}
