package bicop

import "math"

// gumbelCopula implements the Gumbel family.
//
// Gumbel captures upper-tail dependence:
//
//	C(u,v) = exp(-((-ln u)^θ + (-ln v)^θ)^(1/θ)),  θ ∈ [1, ∞)
//
// with θ = 1 degenerating to the independence copula C(u,v) = uv, and
// Kendall's tau given by τ = 1 - 1/θ.
type gumbelCopula struct{}

func (gumbelCopula) Interval() (float64, float64) {
	return 1, math.MaxFloat64
}

func (gumbelCopula) ForbiddenThetas() []float64 {
	return nil
}

// ThetaFromTau computes θ = 1/(1-τ). Negative tau yields θ < 1 and τ = 1
// yields +Inf; both are rejected by the interval check, not here.
func (gumbelCopula) ThetaFromTau(tau float64) (float64, error) {
	return 1 / (1 - tau), nil
}

// Generator evaluates ψ(t) = (-ln t)^θ.
func (gumbelCopula) Generator(t []float64, theta float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = math.Pow(-math.Log(ti), theta)
	}
	return out
}

func (g gumbelCopula) CumulativeDensity(U, V []float64, theta float64) []float64 {
	out := make([]float64, len(U))
	if theta == 1 {
		for i := range U {
			out[i] = U[i] * V[i]
		}
		return out
	}
	for i := range U {
		h := math.Pow(gumbelSum(U[i], V[i], theta), 1/theta)
		out[i] = math.Exp(-h)
	}
	return out
}

// gumbelSum is the generator sum (-ln u)^θ + (-ln v)^θ.
func gumbelSum(u, v, theta float64) float64 {
	return math.Pow(-math.Log(u), theta) + math.Pow(-math.Log(v), theta)
}

// ProbabilityDensity evaluates
//
//	c(u,v) = C(u,v)·(uv)⁻¹·s^(2/θ-2)·(ln u·ln v)^(θ-1)·(1 + (θ-1)·s^(-1/θ))
//
// where s is the generator sum.
func (g gumbelCopula) ProbabilityDensity(U, V []float64, theta float64) []float64 {
	out := make([]float64, len(U))
	if theta == 1 {
		for i := range U {
			out[i] = U[i] * V[i]
		}
		return out
	}
	cdf := g.CumulativeDensity(U, V, theta)
	for i := range U {
		s := gumbelSum(U[i], V[i], theta)
		a := 1 / (U[i] * V[i])
		b := math.Pow(s, -2+2/theta)
		c := math.Pow(math.Log(U[i])*math.Log(V[i]), theta-1)
		d := 1 + (theta-1)*math.Pow(s, -1/theta)
		out[i] = cdf[i] * a * b * c * d
	}
	return out
}

// PartialDerivative evaluates the conditional distribution
//
//	C(u|v) = C(u,v)·s^(1/θ-1)·(-ln v)^(θ-1)/v
//
// minus the shift y, where s is the generator sum.
func (g gumbelCopula) PartialDerivative(U, V []float64, theta, y float64) []float64 {
	out := make([]float64, len(U))
	if theta == 1 {
		copy(out, V)
		return out
	}
	cdf := g.CumulativeDensity(U, V, theta)
	for i := range U {
		s := gumbelSum(U[i], V[i], theta)
		p2 := math.Pow(s, -1+1/theta)
		p3 := math.Pow(-math.Log(V[i]), theta-1)
		out[i] = cdf[i]*p2*p3/V[i] - y
	}
	return out
}

// PercentPoint inverts C(u|v) by bisection on the partial derivative.
// At θ = 1 the conditional distribution is the identity in u.
func (g gumbelCopula) PercentPoint(y, V []float64, theta float64) []float64 {
	out := make([]float64, len(y))
	if theta == 1 {
		copy(out, y)
		return out
	}
	uu := make([]float64, 1)
	vv := make([]float64, 1)
	for i := range y {
		vv[0] = V[i]
		out[i] = invertConditional(func(u float64) float64 {
			uu[0] = u
			return g.PartialDerivative(uu, vv, theta, 0)[0]
		}, y[i])
	}
	return out
}

func (g gumbelCopula) SampleUGivenV(v, draws []float64, theta float64) []float64 {
	return g.PercentPoint(draws, v, theta)
}
