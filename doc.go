// Package bicop fits, samples, and selects bivariate copula models.
//
// # Overview
//
// A copula describes the dependence structure between two random variables
// independently of their marginal distributions. bicop covers the three
// classic one-parameter Archimedean families — Clayton, Frank, Gumbel —
// each driven by a single dependence parameter theta estimated from
// Kendall's tau of rank-transformed observations.
//
// # Architecture
//
// The package components:
//
//   - family.go                      - family tags, variant capability set, registry
//   - clayton.go/frank.go/gumbel.go  - closed-form family math
//   - copula.go                      - the fitted model: Fit, queries, Sample
//   - tail.go                        - empirical tail-dependence curves
//   - select.go                      - tail-based family selection
//   - record.go                      - flat JSON persistence
//   - assertions.go                  - test helpers for copula properties
//
// # Quick Start
//
// Fit a family to rank-transformed data and draw new correlated pairs:
//
//	model, err := bicop.New(bicop.Clayton)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := model.Fit(u, v); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("theta: %.4f (tau %.4f)\n", model.Theta(), model.Tau())
//
//	samples, err := model.Sample(1000) // 1000×2 matrix, columns (U, V)
//
// # Fitting
//
// Fit computes Kendall's tau and maps it to theta through the family's
// inverse relation:
//
//	Clayton: θ = 2τ/(1-τ)              θ ∈ [-1, ∞), θ ≠ 0
//	Frank:   τ(θ) = 1 + 4(D₁(θ)-1)/θ   θ ∈ ℝ, θ ≠ 0 (numeric inversion)
//	Gumbel:  θ = 1/(1-τ)               θ ∈ [1, ∞)
//
// A theta outside the family's validity interval (or on a forbidden value)
// fails the fit with ErrInvalidParameter and leaves any previously fitted
// state untouched.
//
// # Sampling
//
// Sample draws pairs by conditional inversion: v and c are independent
// uniforms and u solves C(u|v) = c, where C(u|v) = ∂C(u,v)/∂v is the
// conditional distribution. Clayton inverts in closed form; Frank and
// Gumbel invert numerically by bisection.
//
// # Model Selection
//
// SelectCopula compares candidate families against the empirical tail
// dependence of the data:
//
//	L(z) = P(U ≤ z, V ≤ z)/z²         (left tail)
//	R(z) = P(U ≥ z, V ≥ z)/(1-z)²     (right tail)
//
// Each candidate's theoretical curves are evaluated on the empirical grid
// and scored by summed squared deviation over both tails. Clayton only
// models positive dependence, so non-positive tau short-circuits to Frank.
// See SelectCopula for the selection criterion caveat.
//
// # Persistence
//
// A fitted model round-trips exactly through a flat record:
//
//	{"copula_type": "CLAYTON", "theta": 1.5, "tau": 0.4285}
//
// See Save, Load, ToRecord, FromRecord.
//
// # Testing
//
// Use assertions to validate fitted models in your own tests:
//
//	func TestMyPipeline(t *testing.T) {
//	    model := fitSomehow(t)
//	    bicop.AssertValidFit(t, model)
//	    bicop.AssertSampleShape(t, model, 500)
//	}
package bicop
