package bicop

// EmpiricalSteps is the grid resolution for the empirical tail curves.
const EmpiricalSteps = 50

// ComputeEmpirical estimates the left and right tail-dependence curves of
// an observation pair on a uniform EmpiricalSteps-point grid over [0, 1].
//
// At each grid point z the joint corner masses are
//
//	left(z)  = |{i : Uᵢ ≤ z and Vᵢ ≤ z}| / N
//	right(z) = |{i : Uᵢ ≥ z and Vᵢ ≥ z}| / N
//
// and the curves record left(z)/z² against zLeft and right(z)/(1-z)²
// against zRight. Grid points with zero corner mass are omitted from the
// respective curve, so the four slices are sparse: zLeft/L and zRight/R
// always pair up, but the two pairs can have different lengths and neither
// needs to cover the full grid.
func ComputeEmpirical(U, V []float64) (zLeft, L, zRight, R []float64) {
	n := float64(len(U))
	for k := 0; k < EmpiricalSteps; k++ {
		z := float64(k) / float64(EmpiricalSteps-1)

		var left, right float64
		for i := range U {
			if U[i] <= z && V[i] <= z {
				left++
			}
			if U[i] >= z && V[i] >= z {
				right++
			}
		}
		left /= n
		right /= n

		if left > 0 {
			zLeft = append(zLeft, z)
			L = append(L, left/(z*z))
		}
		if right > 0 {
			zRight = append(zRight, z)
			R = append(R, right/((1-z)*(1-z)))
		}
	}
	return zLeft, L, zRight, R
}

// TailConcentration maps copula diagonal values C(z,z) to the right-tail
// dependence transform
//
//	(1 - 2z + C(z,z)) / (1-z)²
//
// evaluated pointwise over the grid z. This is the theoretical counterpart
// of the R curve from ComputeEmpirical.
func TailConcentration(c, z []float64) []float64 {
	out := make([]float64, len(c))
	for i := range c {
		d := 1 - z[i]
		out[i] = (1 - 2*z[i] + c[i]) / (d * d)
	}
	return out
}
