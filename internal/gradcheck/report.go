package gradcheck

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Sample is the outcome of one finite-difference probe.
type Sample struct {
	Row       int     `json:"row"`
	Col       int     `json:"col"`
	Analytic  float64 `json:"analytic"`
	Numerical float64 `json:"numerical"`
	RelError  float64 `json:"rel_error"`
	Passed    bool    `json:"passed"`
}

// Report summarises a sparse gradient check.  ID ties log records to the
// report written by WriteJSON.
type Report struct {
	ID          string   `json:"id"`
	Samples     []Sample `json:"samples"`
	MaxRelError float64  `json:"max_rel_error"`
	Passed      bool     `json:"passed"`
}

func newReport() Report {
	return Report{
		ID:     "gc_" + uuid.NewString(),
		Passed: true,
	}
}

func (r *Report) add(s Sample) {
	r.Samples = append(r.Samples, s)
	r.MaxRelError = max(r.MaxRelError, s.RelError)
	r.Passed = r.Passed && s.Passed
}

// WriteJSON writes the report as indented JSON.  Non-finite values (for
// example an infinite loss propagating into a probe) cannot be encoded and
// yield an error.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
