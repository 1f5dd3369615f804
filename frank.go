package bicop

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/integrate/quad"
)

// frankCopula implements the Frank family.
//
// Frank is the only supported family covering both positive and negative
// dependence, which is why selection falls back to it unconditionally when
// Clayton's tau is non-positive. With g(z) = e^(-θz) - 1:
//
//	C(u,v) = -ln(1 + g(u)·g(v)/g(1)) / θ
//
// Kendall's tau has no closed-form inverse. It relates to theta through
// the first Debye function D₁:
//
//	τ(θ) = 1 + 4·(D₁(θ) - 1)/θ,   D₁(θ) = (1/θ)·∫₀^θ t/(eᵗ-1) dt
//
// τ(θ) is odd and strictly increasing, so inversion brackets |τ| on the
// positive axis and restores the sign afterwards.
//
// Valid theta is any nonzero real.
type frankCopula struct{}

const (
	// debyeQuadNodes is the Gauss-Legendre node count for the Debye
	// integral. The integrand is smooth on [0, θ]; 96 nodes hold it to
	// machine precision over the bracketed range.
	debyeQuadNodes = 96

	// debyeTailCutoff is the θ beyond which ∫₀^θ t/(eᵗ-1) dt equals the
	// full integral π²/6 to within 1e-11.
	debyeTailCutoff = 30.0

	// frankThetaBracketLo anchors the bisection bracket. Below it the
	// series τ(θ) ≈ θ/9 is exact to solver tolerance.
	frankThetaBracketLo = 1e-6
)

func (frankCopula) Interval() (float64, float64) {
	return -math.MaxFloat64, math.MaxFloat64
}

func (frankCopula) ForbiddenThetas() []float64 {
	return []float64{0}
}

// debye1 computes the first Debye function D₁(θ) for θ > 0.
func debye1(theta float64) float64 {
	integrand := func(t float64) float64 {
		if t < 1e-12 {
			return 1 // lim t→0 of t/(eᵗ-1)
		}
		return t / math.Expm1(t)
	}
	if theta >= debyeTailCutoff {
		return math.Pi * math.Pi / 6 / theta
	}
	return quad.Fixed(integrand, 0, theta, debyeQuadNodes, nil, 0) / theta
}

// frankTau evaluates Kendall's tau for a positive theta.
func frankTau(theta float64) float64 {
	return 1 + 4*(debye1(theta)-1)/theta
}

// ThetaFromTau inverts τ(θ) numerically. |τ| ≥ 1 has no finite solution
// and is reported as a parameter error; τ = 0 maps to θ = 0, which the
// forbidden-value check rejects downstream.
func (frankCopula) ThetaFromTau(tau float64) (float64, error) {
	if math.IsNaN(tau) || math.Abs(tau) >= 1 {
		return 0, errors.Wrapf(ErrInvalidParameter,
			"no finite Frank theta exists for tau %v", tau)
	}
	target := math.Abs(tau)
	if target == 0 {
		return 0, nil
	}
	if frankTau(frankThetaBracketLo) >= target {
		return math.Copysign(9*target, tau), nil
	}
	hi := 1.0
	for frankTau(hi) < target {
		hi *= 2
	}
	theta := bisect(func(t float64) float64 {
		return frankTau(t) - target
	}, frankThetaBracketLo, hi)
	return math.Copysign(theta, tau), nil
}

// g is the building block e^(-θz) - 1 shared by all Frank formulas.
func (frankCopula) g(z, theta float64) float64 {
	return math.Expm1(-theta * z)
}

// Generator evaluates ψ(t) = -ln(g(t)/g(1)).
func (f frankCopula) Generator(t []float64, theta float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = -math.Log(f.g(ti, theta) / f.g(1, theta))
	}
	return out
}

// ProbabilityDensity evaluates
//
//	c(u,v) = -θ·g(1)·(1 + g(u+v)) / (g(u)·g(v) + g(1))²
func (f frankCopula) ProbabilityDensity(U, V []float64, theta float64) []float64 {
	out := make([]float64, len(U))
	if theta == 0 {
		for i := range U {
			out[i] = U[i] * V[i]
		}
		return out
	}
	for i := range U {
		num := -theta * f.g(1, theta) * (1 + f.g(U[i]+V[i], theta))
		den := f.g(U[i], theta)*f.g(V[i], theta) + f.g(1, theta)
		out[i] = num / (den * den)
	}
	return out
}

func (f frankCopula) CumulativeDensity(U, V []float64, theta float64) []float64 {
	out := make([]float64, len(U))
	if theta == 0 {
		for i := range U {
			out[i] = U[i] * V[i]
		}
		return out
	}
	for i := range U {
		out[i] = -math.Log1p(f.g(U[i], theta)*f.g(V[i], theta)/f.g(1, theta)) / theta
	}
	return out
}

// PartialDerivative evaluates the conditional distribution
//
//	C(u|v) = (g(u)·g(v) + g(u)) / (g(u)·g(v) + g(1))
//
// minus the shift y.
func (f frankCopula) PartialDerivative(U, V []float64, theta, y float64) []float64 {
	out := make([]float64, len(U))
	if theta == 0 {
		copy(out, V)
		return out
	}
	for i := range U {
		gu, gv := f.g(U[i], theta), f.g(V[i], theta)
		out[i] = (gu*gv+gu)/(gu*gv+f.g(1, theta)) - y
	}
	return out
}

// PercentPoint inverts C(u|v) by bisection on the partial derivative.
func (f frankCopula) PercentPoint(y, V []float64, theta float64) []float64 {
	out := make([]float64, len(y))
	if theta == 0 {
		copy(out, y)
		return out
	}
	uu := make([]float64, 1)
	vv := make([]float64, 1)
	for i := range y {
		vv[0] = V[i]
		out[i] = invertConditional(func(u float64) float64 {
			uu[0] = u
			return f.PartialDerivative(uu, vv, theta, 0)[0]
		}, y[i])
	}
	return out
}

func (f frankCopula) SampleUGivenV(v, draws []float64, theta float64) []float64 {
	return f.PercentPoint(draws, v, theta)
}
