package bicop

import "math"

// claytonCopula implements the Clayton family.
//
// The Clayton copula captures lower-tail (joint-crash) dependence:
//
//	C(u,v) = (u^-θ + v^-θ - 1)^(-1/θ)
//
// Kendall's tau relates to theta in closed form:
//
//	τ = θ/(θ+2)  ⇔  θ = 2τ/(1-τ)
//
// Valid theta lies in [-1, ∞) with θ = 0 excluded (the family degenerates
// to independence there and every formula below divides by θ).
type claytonCopula struct{}

func (claytonCopula) Interval() (float64, float64) {
	return -1, math.MaxFloat64
}

func (claytonCopula) ForbiddenThetas() []float64 {
	return []float64{0}
}

// ThetaFromTau computes θ = 2τ/(1-τ). At τ = 1 this diverges to +Inf,
// which the interval check then rejects; no error is raised here.
func (claytonCopula) ThetaFromTau(tau float64) (float64, error) {
	return 2 * tau / (1 - tau), nil
}

// Generator evaluates ψ(t) = (t^-θ - 1)/θ.
func (claytonCopula) Generator(t []float64, theta float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = (math.Pow(ti, -theta) - 1) / theta
	}
	return out
}

// ProbabilityDensity evaluates
//
//	c(u,v) = (θ+1)·(uv)^(-θ-1)·(u^-θ + v^-θ - 1)^(-(2θ+1)/θ)
func (claytonCopula) ProbabilityDensity(U, V []float64, theta float64) []float64 {
	out := make([]float64, len(U))
	for i := range U {
		a := (theta + 1) * math.Pow(U[i]*V[i], -theta-1)
		b := math.Pow(math.Pow(U[i], -theta)+math.Pow(V[i], -theta)-1, -(2*theta+1)/theta)
		out[i] = a * b
	}
	return out
}

// CumulativeDensity evaluates C(u,v), zero whenever u or v is zero and
// clamped below at zero (for θ < 0 the raw power can go negative).
func (claytonCopula) CumulativeDensity(U, V []float64, theta float64) []float64 {
	out := make([]float64, len(U))
	for i := range U {
		if U[i] <= 0 || V[i] <= 0 {
			continue
		}
		c := math.Pow(math.Pow(U[i], -theta)+math.Pow(V[i], -theta)-1, -1/theta)
		out[i] = math.Max(c, 0)
	}
	return out
}

// PercentPoint inverts the conditional distribution in closed form:
//
//	u = ((y^(θ/(-1-θ)) + v^θ - 1) / v^θ)^(-1/θ)
//
// For θ < 0 the conditioning values are passed through unchanged.
func (claytonCopula) PercentPoint(y, V []float64, theta float64) []float64 {
	out := make([]float64, len(y))
	if theta < 0 {
		copy(out, V)
		return out
	}
	for i := range y {
		a := math.Pow(y[i], theta/(-1-theta))
		b := math.Pow(V[i], theta)
		out[i] = math.Pow((a+b-1)/b, -1/theta)
	}
	return out
}

// PartialDerivative evaluates the conditional distribution
//
//	C(u|v) = v^(-θ-1)·(v^-θ + u^-θ - 1)^(-(θ+1)/θ)
//
// minus the shift y.
func (claytonCopula) PartialDerivative(U, V []float64, theta, y float64) []float64 {
	out := make([]float64, len(U))
	if theta == 0 {
		copy(out, V)
		return out
	}
	for i := range U {
		a := math.Pow(V[i], -theta-1)
		b := math.Pow(V[i], -theta) + math.Pow(U[i], -theta) - 1
		out[i] = a*math.Pow(b, (-1-theta)/theta) - y
	}
	return out
}

func (c claytonCopula) SampleUGivenV(v, draws []float64, theta float64) []float64 {
	return c.PercentPoint(draws, v, theta)
}
