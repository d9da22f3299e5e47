package pipeline

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Series is a []float64 that survives JSON. IEEE non-finite values — the
// honest output of empty-bin divisions — have no JSON representation, so
// marshaling writes them as null and unmarshaling reads null back as NaN.
// In-memory values are never altered; the substitution happens at the
// encoding boundary only. Infinities collapse to null too, and therefore
// return as NaN: JSON cannot carry the distinction.
type Series []float64

// MarshalJSON renders the series as a JSON array with non-finite entries
// as null.
func (s Series) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 2+16*len(s))
	buf = append(buf, '[')
	for i, v := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf = append(buf, "null"...)
			continue
		}
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	}
	buf = append(buf, ']')

	return buf, nil
}

// UnmarshalJSON reads a JSON array, mapping null entries to NaN.
func (s *Series) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Series, len(raw))
	for i, v := range raw {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *v
	}
	*s = out

	return nil
}

// Report is the data product of one estimation run: the estimated profiles
// on their shared bin centers, plus enough provenance to reproduce and
// audit the run. All profile fields are index-aligned with Centers.
type Report struct {
	// RunID uniquely tags this run.
	RunID uuid.UUID `json:"run_id"`

	// Elapsed is the wall-clock duration of the whole run, simulation
	// included, in nanoseconds.
	Elapsed time.Duration `json:"elapsed"`

	// Paths, Succeeded, and Failed count the requested, surviving, and
	// excluded realizations.
	Paths     int `json:"paths"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`

	// Errors lists the per-realization failure messages, if any.
	Errors []string `json:"errors,omitempty"`

	// Samples counts the pooled field samples retained by the bulk density.
	Samples int `json:"samples"`

	// Bins is the partition resolution shared by all profiles.
	Bins int `json:"bins"`

	// Centers are the bin centers every profile is sampled on.
	Centers Series `json:"centers"`

	// Density is the bulk density f(y).
	Density Series `json:"density"`

	// Drift is the first Kolmogorov coefficient D1(y).
	Drift Series `json:"drift"`

	// Diffusion is the second Kolmogorov coefficient D2(y).
	Diffusion Series `json:"diffusion"`

	// DfDt and Transport are the two sides of the balance diagnostic,
	// present only when the capture window matched the five-point stencil.
	DfDt      Series `json:"df_dt,omitempty"`
	Transport Series `json:"transport,omitempty"`
}
