package bicop

import (
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Copula is a bivariate copula model bound to one family.
//
// A Copula is created unfitted. Fit estimates the dependence parameter
// theta from Kendall's tau of the observations and commits it atomically:
// a failed fit never leaves a partially-updated model, and a previously
// fitted state survives a failed re-fit. All queries and sampling require
// a fitted model.
//
// Each instance owns its state and is intended for single-goroutine use;
// separate instances are independent.
type Copula struct {
	family  CopulaFamily
	variant Variant
	fitted  *fitState
	src     rand.Source
}

// fitState holds the parameters of one successful fit. Theta and tau are
// always set together (fit is all-or-nothing).
type fitState struct {
	theta float64
	tau   float64
}

// New creates an unfitted model for the given family tag.
func New(family CopulaFamily) (*Copula, error) {
	variant, ok := variants[family]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidFamily, "unknown family tag %d", int(family))
	}
	return &Copula{family: family, variant: variant}, nil
}

// NewFromName creates an unfitted model from a case-insensitive family name.
func NewFromName(name string) (*Copula, error) {
	family, err := ParseFamily(name)
	if err != nil {
		return nil, err
	}
	return New(family)
}

// Family returns the family tag the model is bound to.
func (c *Copula) Family() CopulaFamily { return c.family }

// Fitted reports whether the model holds a fitted parameter state.
func (c *Copula) Fitted() bool { return c.fitted != nil }

// Theta returns the fitted dependence parameter, NaN if unfitted.
func (c *Copula) Theta() float64 {
	if c.fitted == nil {
		return math.NaN()
	}
	return c.fitted.theta
}

// Tau returns the fitted Kendall's tau, NaN if unfitted.
func (c *Copula) Tau() float64 {
	if c.fitted == nil {
		return math.NaN()
	}
	return c.fitted.tau
}

// Seed makes subsequent Sample calls deterministic by switching the model
// to a private random source. Without it, draws come from a process-wide
// source.
func (c *Copula) Seed(seed uint64) {
	c.src = rand.NewSource(seed)
}

// Fit estimates theta from the observation pair (U, V).
//
// U and V must have equal length of at least two. Kendall's tau is
// computed from the ranks, mapped to theta by the family, and validated
// against the family's interval and forbidden values; only then is the
// new state committed.
func (c *Copula) Fit(U, V []float64) error {
	if len(U) != len(V) {
		return errors.Wrapf(ErrInsufficientData,
			"mismatched observation lengths %d and %d", len(U), len(V))
	}
	if len(U) < 2 {
		return errors.Wrapf(ErrInsufficientData,
			"need at least 2 observation pairs, got %d", len(U))
	}
	tau := stat.Kendall(U, V, nil)
	theta, err := c.variant.ThetaFromTau(tau)
	if err != nil {
		return err
	}
	if err := checkTheta(c.family, c.variant, theta); err != nil {
		return err
	}
	c.fitted = &fitState{theta: theta, tau: tau}
	return nil
}

func (c *Copula) checkFit() error {
	if c.fitted == nil {
		return errors.Wrapf(ErrNotFitted, "%s copula", c.family)
	}
	return nil
}

func (c *Copula) checkLengths(U, V []float64) error {
	if len(U) != len(V) {
		return errors.Wrapf(ErrInsufficientData,
			"mismatched coordinate lengths %d and %d", len(U), len(V))
	}
	return nil
}

// ProbabilityDensity evaluates the copula density c(u, v) pointwise with
// the fitted theta.
func (c *Copula) ProbabilityDensity(U, V []float64) ([]float64, error) {
	if err := c.checkFit(); err != nil {
		return nil, err
	}
	if err := c.checkLengths(U, V); err != nil {
		return nil, err
	}
	return c.variant.ProbabilityDensity(U, V, c.fitted.theta), nil
}

// CumulativeDensity evaluates C(u, v) pointwise with the fitted theta.
func (c *Copula) CumulativeDensity(U, V []float64) ([]float64, error) {
	if err := c.checkFit(); err != nil {
		return nil, err
	}
	if err := c.checkLengths(U, V); err != nil {
		return nil, err
	}
	return c.variant.CumulativeDensity(U, V, c.fitted.theta), nil
}

// PercentPoint inverts the conditional distribution C(u|v) pointwise with
// the fitted theta.
func (c *Copula) PercentPoint(y, V []float64) ([]float64, error) {
	if err := c.checkFit(); err != nil {
		return nil, err
	}
	if err := c.checkLengths(y, V); err != nil {
		return nil, err
	}
	return c.variant.PercentPoint(y, V, c.fitted.theta), nil
}

// PartialDerivative evaluates ∂C(u,v)/∂v - y pointwise with the fitted
// theta. Pass y = 0 for the plain conditional distribution.
func (c *Copula) PartialDerivative(U, V []float64, y float64) ([]float64, error) {
	if err := c.checkFit(); err != nil {
		return nil, err
	}
	if err := c.checkLengths(U, V); err != nil {
		return nil, err
	}
	return c.variant.PartialDerivative(U, V, c.fitted.theta, y), nil
}

// Generator evaluates the Archimedean generator pointwise with the fitted
// theta.
func (c *Copula) Generator(t []float64) ([]float64, error) {
	if err := c.checkFit(); err != nil {
		return nil, err
	}
	return c.variant.Generator(t, c.fitted.theta), nil
}

// Sample draws n pairs from the fitted model via conditional inversion:
//
//	v ~ U(0,1),  c ~ U(0,1),  u = C⁻¹(c | v)
//
// The result is an n×2 matrix with column order (U, V). Sampling with
// n = 0 returns an empty matrix. The two length-n uniform vectors backing
// one call are drawn coherently from the model's source, so a Seed-ed
// model samples deterministically.
func (c *Copula) Sample(n int) (*mat.Dense, error) {
	if err := c.checkFit(); err != nil {
		return nil, err
	}
	if c.fitted.tau < -1 || c.fitted.tau > 1 {
		return nil, errors.Wrapf(ErrRange, "fitted tau %v", c.fitted.tau)
	}
	if n < 0 {
		return nil, errors.Wrapf(ErrRange, "sample size %d is negative", n)
	}
	if n == 0 {
		return &mat.Dense{}, nil
	}

	uniform := distuv.Uniform{Min: 0, Max: 1, Src: c.src}
	v := make([]float64, n)
	for i := range v {
		v[i] = uniform.Rand()
	}
	draws := make([]float64, n)
	for i := range draws {
		draws[i] = uniform.Rand()
	}

	u := c.variant.SampleUGivenV(v, draws, c.fitted.theta)

	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		out.Set(i, 0, u[i])
		out.Set(i, 1, v[i])
	}
	return out, nil
}
