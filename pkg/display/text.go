package display

import (
	"fmt"
	"io"

	"github.com/superflow-dev/superflow-extension/pkg/inject"
)

// TextRenderer prints one line per target and a summary line
type TextRenderer struct{}

func (r *TextRenderer) Render(w io.Writer, report *inject.Report) error {
	if report == nil {
		_, err := fmt.Fprintln(w, "nothing to do")
		return err
	}

	header := fmt.Sprintf("%s: %s", report.Mode, report.Target)
	if report.DryRun {
		header += " (dry run)"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, res := range report.Results {
		line := fmt.Sprintf("  %-27s %s", res.Outcome, res.Target)
		if d := detailFor(res); d != "" {
			line += " (" + d + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, warn := range report.Warnings {
		if _, err := fmt.Fprintf(w, "  warning: %s\n", warn); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, summaryLine(report.Summary()))
	return err
}

func summaryLine(s inject.Summary) string {
	return fmt.Sprintf("total %d: %d injected, %d updated, %d already present, %d no insertion point, %d skipped, %d failed",
		s.Total, s.Injected, s.Updated, s.Present(), s.NoInsertionPoint, s.Skipped, s.Failed)
}
