// Package vote runs the majority vote over decoded input elements.
package vote

import (
	"github.com/dmitrymomot/majority/internal/input"
	"github.com/dmitrymomot/majority/pkg/majority"
)

// Options selects how elements are compared and whether the winner is confirmed.
type Options struct {
	Validate  bool
	Fold      bool
	Normalize bool
}

// Stats are the scan statistics reported alongside the winner.
type Stats struct {
	Total       int  `json:"total"`
	Threshold   int  `json:"threshold"`
	Scanned     int  `json:"scanned"`
	Occurrences int  `json:"occurrences"`
	EarlyStop   bool `json:"early_stop"`
	Validated   bool `json:"validated"`
}

// Report is a successful vote over canonical elements.
type Report struct {
	// Value is the canonical JSON text of the first surviving candidate.
	Value string
	Stats Stats
}

// Display returns Value rendered for people.
func (r Report) Display() string { return input.Display(r.Value) }

// Run votes over canonical element texts as produced by package input.
// Errors are those of package majority.
func Run(items []string, opts Options) (Report, error) {
	out, err := majority.AnalyzeBy(items,
		input.KeyFunc(opts.Fold, opts.Normalize),
		majority.WithValidation(opts.Validate),
	)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Value: out.Value,
		Stats: Stats{
			Total:       out.Total,
			Threshold:   out.Threshold,
			Scanned:     out.Scanned,
			Occurrences: out.Occurrences,
			EarlyStop:   out.EarlyStop,
			Validated:   out.Validated,
		},
	}, nil
}
