package inject

import "time"

// Outcome is the result category of one target
type Outcome string

const (
	OutcomeInjected         Outcome = "injected"
	OutcomeAlreadyPresent   Outcome = "already-present"
	OutcomeUpdated          Outcome = "updated"
	OutcomeUpToDate         Outcome = "up-to-date"
	OutcomeNoInsertionPoint Outcome = "skipped-no-insertion-point"
	OutcomeSkipped          Outcome = "skipped"
	OutcomeFailed           Outcome = "failed"
)

// Result is the outcome for a single target
type Result struct {
	// Target is a file path, or "snippet:<title>" for the remote backend
	Target  string
	Outcome Outcome

	// Point is set for files that were (or in a dry run would be) injected
	Point InsertionPoint

	// SnippetID is the remote id, when one is known
	SnippetID int

	// Err explains failed and skipped outcomes
	Err error
}

// Report aggregates the results of one run
type Report struct {
	Mode   string
	Target string
	DryRun bool

	Results []Result

	// Warnings are non-fatal enumeration problems, e.g. unreadable directories
	Warnings []error

	Duration time.Duration
}

// Summary holds per-category counts
type Summary struct {
	Total            int `json:"total"`
	Injected         int `json:"injected"`
	AlreadyPresent   int `json:"already_present"`
	Updated          int `json:"updated"`
	UpToDate         int `json:"up_to_date"`
	NoInsertionPoint int `json:"no_insertion_point"`
	Skipped          int `json:"skipped"`
	Failed           int `json:"failed"`
}

// Present is the number of targets that needed no write
func (s Summary) Present() int {
	return s.AlreadyPresent + s.UpToDate
}

// Add appends a result
func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
}

// Summary tallies the results
func (r *Report) Summary() Summary {
	s := Summary{Total: len(r.Results)}
	for _, res := range r.Results {
		switch res.Outcome {
		case OutcomeInjected:
			s.Injected++
		case OutcomeAlreadyPresent:
			s.AlreadyPresent++
		case OutcomeUpdated:
			s.Updated++
		case OutcomeUpToDate:
			s.UpToDate++
		case OutcomeNoInsertionPoint:
			s.NoInsertionPoint++
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeFailed:
			s.Failed++
		}
	}
	return s
}

// Failed returns the failed results
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			failed = append(failed, res)
		}
	}
	return failed
}
