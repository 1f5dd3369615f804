package bicop

// Scalar bracketed bisection, shared by Frank's tau inversion and the
// numeric conditional inversions of Frank and Gumbel. gonum carries
// minimizers but no scalar root finder, so this stays hand-rolled.

const (
	// bisectTol is the absolute interval width at which bisection stops.
	bisectTol = 1e-13

	// bisectMaxIter bounds the halving steps. 200 halvings shrink any
	// bracket used here to well below bisectTol.
	bisectMaxIter = 200

	// conditionalEps keeps the conditional inversion away from the open
	// endpoints of (0, 1), where the copula densities blow up.
	conditionalEps = 1e-9
)

// bisect finds x in [lo, hi] with f(x) = 0 for a monotone increasing f.
// If the root lies outside the bracket the nearer endpoint is returned.
func bisect(f func(float64) float64, lo, hi float64) float64 {
	flo, fhi := f(lo), f(hi)
	if flo >= 0 {
		return lo
	}
	if fhi <= 0 {
		return hi
	}
	for i := 0; i < bisectMaxIter && hi-lo > bisectTol; i++ {
		mid := 0.5 * (lo + hi)
		if f(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

// invertConditional solves conditional(u) = y for u in (0, 1). The
// conditional distribution C(u|v) is a CDF in u, hence monotone increasing,
// which makes bisection exact up to tolerance.
func invertConditional(conditional func(u float64) float64, y float64) float64 {
	return bisect(func(u float64) float64 {
		return conditional(u) - y
	}, conditionalEps, 1-conditionalEps)
}
