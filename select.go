package bicop

import (
	"math"

	"github.com/cockroachdb/errors"
)

// SelectCopula chooses, among the supported families, the one whose tail
// dependence matches the observation pair, and returns its tag together
// with the fitted theta.
//
// Clayton is fitted first. Clayton only captures positive dependence, so
// when its tau is non-positive the selection short-circuits: Frank (which
// covers the whole tau range) is fitted and returned without any tail
// comparison. Otherwise Frank and Gumbel join Clayton as candidates; a
// candidate whose fit fails parameter validation is dropped silently,
// any other fit error aborts the selection.
//
// Surviving candidates are scored against the empirical tail curves of
// the data: for each candidate the theoretical left curve C(z,z)/z² and
// right curve (1-2z+C(z,z))/(1-z)² are evaluated on the empirical grids,
// and the score is the summed squared deviation over both tails.
//
// The candidate with the LARGEST score is selected. A conventional
// best-fit would take the smallest; the maximum is the long-standing
// behavior of this routine and callers may depend on it, so it is pinned
// by a regression test rather than changed. Ties keep the earliest
// candidate in fit order (Clayton, Frank, Gumbel).
func SelectCopula(U, V []float64) (CopulaFamily, float64, error) {
	clayton, err := New(Clayton)
	if err != nil {
		return 0, 0, err
	}
	if err := clayton.Fit(U, V); err != nil {
		return 0, 0, err
	}

	if clayton.Tau() <= 0 {
		frank, err := New(Frank)
		if err != nil {
			return 0, 0, err
		}
		if err := frank.Fit(U, V); err != nil {
			return 0, 0, err
		}
		return Frank, frank.Theta(), nil
	}

	candidates := []*Copula{clayton}
	for _, family := range []CopulaFamily{Frank, Gumbel} {
		candidate, err := New(family)
		if err != nil {
			return 0, 0, err
		}
		if err := candidate.Fit(U, V); err != nil {
			if errors.Is(err, ErrInvalidParameter) {
				continue
			}
			return 0, 0, err
		}
		candidates = append(candidates, candidate)
	}

	zLeft, L, zRight, R := ComputeEmpirical(U, V)

	best := 0
	bestCost := math.Inf(-1)
	for i, candidate := range candidates {
		cost, err := tailCost(candidate, zLeft, L, zRight, R)
		if err != nil {
			return 0, 0, err
		}
		if cost > bestCost {
			best, bestCost = i, cost
		}
	}
	return candidates[best].Family(), candidates[best].Theta(), nil
}

// tailCost sums the squared deviations between a fitted candidate's
// theoretical tail curves and the empirical curves, over both tails.
func tailCost(c *Copula, zLeft, L, zRight, R []float64) (float64, error) {
	var cost float64

	diagonal, err := c.CumulativeDensity(zLeft, zLeft)
	if err != nil {
		return 0, err
	}
	for i := range diagonal {
		d := L[i] - diagonal[i]/(zLeft[i]*zLeft[i])
		cost += d * d
	}

	diagonal, err = c.CumulativeDensity(zRight, zRight)
	if err != nil {
		return 0, err
	}
	for i, t := range TailConcentration(diagonal, zRight) {
		d := R[i] - t
		cost += d * d
	}
	return cost, nil
}
