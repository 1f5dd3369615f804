package bicop

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// CopulaFamily identifies one of the supported one-parameter Archimedean
// copula families. The set is closed: extending it means adding a new
// Variant implementation and a new entry in the variants table below.
type CopulaFamily int

const (
	Clayton CopulaFamily = iota
	Frank
	Gumbel
)

// String returns the canonical upper-case family name, which is also the
// name used in persisted records.
func (f CopulaFamily) String() string {
	switch f {
	case Clayton:
		return "CLAYTON"
	case Frank:
		return "FRANK"
	case Gumbel:
		return "GUMBEL"
	default:
		return "UNKNOWN"
	}
}

// ParseFamily resolves a case-insensitive family name to its tag.
func ParseFamily(name string) (CopulaFamily, error) {
	switch strings.ToUpper(name) {
	case "CLAYTON":
		return Clayton, nil
	case "FRANK":
		return Frank, nil
	case "GUMBEL":
		return Gumbel, nil
	default:
		return 0, errors.Wrapf(ErrInvalidFamily, "unknown family %q", name)
	}
}

// Variant is the capability set every copula family implements.
//
// All slice-valued operations are pointwise: they take equal-length
// coordinate slices and return a slice of the same length. Length checking
// is the caller's job (the Copula model enforces it); variants assume it.
//
// Theta is passed explicitly so variants stay stateless: the fitted state
// lives in the Copula model, the math lives here.
type Variant interface {
	// ThetaFromTau inverts Kendall's tau to the family's dependence
	// parameter. Returns an error when no finite theta exists for the
	// given tau (|tau| at an invertibility boundary).
	ThetaFromTau(tau float64) (float64, error)

	// Interval returns the closed validity interval for theta.
	Interval() (lower, upper float64)

	// ForbiddenThetas returns isolated theta values inside the interval
	// that the family does not admit.
	ForbiddenThetas() []float64

	// Generator evaluates the Archimedean generator ψ(t) pointwise.
	Generator(t []float64, theta float64) []float64

	// ProbabilityDensity evaluates the copula density c(u, v) pointwise.
	ProbabilityDensity(U, V []float64, theta float64) []float64

	// CumulativeDensity evaluates the copula C(u, v) pointwise.
	CumulativeDensity(U, V []float64, theta float64) []float64

	// PercentPoint inverts the conditional distribution: for each pair
	// (y_i, v_i) it returns u_i with C(u_i | v_i) = y_i.
	PercentPoint(y, V []float64, theta float64) []float64

	// PartialDerivative evaluates ∂C(u,v)/∂v - y pointwise. With y = 0
	// this is the conditional distribution C(u|v); nonzero y turns it
	// into the residual used for root-finding during inversion.
	PartialDerivative(U, V []float64, theta, y float64) []float64

	// SampleUGivenV maps conditioning values v and uniform draws c to
	// samples u honoring the conditional distribution.
	SampleUGivenV(v, c []float64, theta float64) []float64
}

// variants maps each family tag to its implementation. Built once at
// process start, read-only afterwards: safe for concurrent reads.
var variants = map[CopulaFamily]Variant{
	Clayton: claytonCopula{},
	Frank:   frankCopula{},
	Gumbel:  gumbelCopula{},
}

// checkTheta validates theta against the family's interval and forbidden
// values. A NaN theta (e.g. from a degenerate tau) fails the interval check.
func checkTheta(family CopulaFamily, v Variant, theta float64) error {
	lower, upper := v.Interval()
	if !(lower <= theta && theta <= upper) {
		return errors.Wrapf(ErrInvalidParameter,
			"computed theta %v is out of limits for the %s copula", theta, family)
	}
	for _, forbidden := range v.ForbiddenThetas() {
		if theta == forbidden {
			return errors.Wrapf(ErrInvalidParameter,
				"computed theta %v is forbidden for the %s copula", theta, family)
		}
	}
	return nil
}
