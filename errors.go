package bicop

import "github.com/cockroachdb/errors"

// Error kinds returned by the package. Callers branch with errors.Is; the
// concrete errors carry additional context (family name, offending value)
// through wrapping.
var (
	// ErrInvalidFamily reports an unrecognized copula family identifier
	// at construction time.
	ErrInvalidFamily = errors.New("invalid copula family")

	// ErrInsufficientData reports a fit attempted on too few or
	// mismatched-length observation sequences.
	ErrInsufficientData = errors.New("insufficient observation data")

	// ErrInvalidParameter reports a computed theta outside the family's
	// validity interval, or equal to one of its forbidden values.
	// Selection treats this as "candidate inapplicable" and drops the
	// candidate; all other callers see it as a failed fit.
	ErrInvalidParameter = errors.New("theta out of limits")

	// ErrNotFitted reports a query or sampling operation invoked before
	// a successful Fit.
	ErrNotFitted = errors.New("copula model is not fitted")

	// ErrRange reports a fitted tau outside [-1, 1] discovered at sample
	// time. Unreachable if parameter validation is correct, but checked.
	ErrRange = errors.New("correlation measure out of range [-1, 1]")

	// ErrSerialization reports a malformed persisted record.
	ErrSerialization = errors.New("malformed copula record")
)
