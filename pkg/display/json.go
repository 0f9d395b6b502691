package display

import (
	"encoding/json"
	"io"

	"github.com/superflow-dev/superflow-extension/pkg/errors"
	"github.com/superflow-dev/superflow-extension/pkg/inject"
)

// JSONRenderer writes the report as a single JSON document
type JSONRenderer struct {
	Indent string
}

type jsonReport struct {
	Mode       string         `json:"mode"`
	Target     string         `json:"target"`
	DryRun     bool           `json:"dry_run"`
	DurationMS int64          `json:"duration_ms"`
	Summary    inject.Summary `json:"summary"`
	Results    []jsonResult   `json:"results"`
	Warnings   []string       `json:"warnings,omitempty"`
}

type jsonResult struct {
	Target    string `json:"target"`
	Outcome   string `json:"outcome"`
	Point     string `json:"insertion_point,omitempty"`
	SnippetID int    `json:"snippet_id,omitempty"`
	Code      string `json:"code,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (r *JSONRenderer) Render(w io.Writer, report *inject.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", r.Indent)

	if report == nil {
		return enc.Encode(struct {
			Results []jsonResult `json:"results"`
		}{Results: []jsonResult{}})
	}

	out := jsonReport{
		Mode:       report.Mode,
		Target:     report.Target,
		DryRun:     report.DryRun,
		DurationMS: report.Duration.Milliseconds(),
		Summary:    report.Summary(),
		Results:    make([]jsonResult, 0, len(report.Results)),
	}
	for _, res := range report.Results {
		jr := jsonResult{
			Target:    res.Target,
			Outcome:   string(res.Outcome),
			SnippetID: res.SnippetID,
			Error:     errText(res.Err),
		}
		if res.Point != inject.NoneFound {
			jr.Point = res.Point.String()
		}
		if res.Err != nil {
			jr.Code = string(errors.GetErrorCode(res.Err))
		}
		out.Results = append(out.Results, jr)
	}
	for _, warn := range report.Warnings {
		out.Warnings = append(out.Warnings, warn.Error())
	}
	return enc.Encode(out)
}
