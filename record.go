package bicop

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
)

// Record is the flat persisted form of a Copula. Theta and tau are null
// for an unfitted model and always set together otherwise.
type Record struct {
	CopulaType string   `json:"copula_type"`
	Theta      *float64 `json:"theta"`
	Tau        *float64 `json:"tau"`
}

// ToRecord captures the model's family and fitted state.
func (c *Copula) ToRecord() Record {
	rec := Record{CopulaType: c.family.String()}
	if c.fitted != nil {
		theta, tau := c.fitted.theta, c.fitted.tau
		rec.Theta = &theta
		rec.Tau = &tau
	}
	return rec
}

// FromRecord reconstructs a model bound to the record's family and injects
// its theta/tau directly. Records are trusted to come from a prior valid
// fit, so theta is NOT re-validated against the family's interval; the
// only structural check is that theta and tau are set together, since a
// half-set pair can never result from a fit.
func FromRecord(rec Record) (*Copula, error) {
	family, err := ParseFamily(rec.CopulaType)
	if err != nil {
		return nil, errors.Wrapf(ErrSerialization, "copula_type: %v", err)
	}
	c, err := New(family)
	if err != nil {
		return nil, err
	}
	switch {
	case rec.Theta == nil && rec.Tau == nil:
		// Unfitted model, nothing to inject.
	case rec.Theta != nil && rec.Tau != nil:
		c.fitted = &fitState{theta: *rec.Theta, tau: *rec.Tau}
	default:
		return nil, errors.Wrap(ErrSerialization, "theta and tau must be set together")
	}
	return c, nil
}

// Save writes the model's record as JSON to the given path.
func (c *Copula) Save(path string) error {
	data, err := json.Marshal(c.ToRecord())
	if err != nil {
		return errors.Wrapf(err, "encoding %s copula record", c.family)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a record written by Save and reconstructs the model.
func Load(path string) (*Copula, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrapf(ErrSerialization, "decoding %s: %v", path, err)
	}
	return FromRecord(rec)
}
