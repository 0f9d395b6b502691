package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/superflow-dev/superflow-extension/pkg/inject"
)

var (
	colorOK      = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFB74D"}
	colorError   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}

	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// RichRenderer draws a pterm table of targets and a lipgloss summary box
type RichRenderer struct{}

func (r *RichRenderer) Render(w io.Writer, report *inject.Report) error {
	if report == nil {
		_, err := fmt.Fprintln(w, pterm.Gray("nothing to do"))
		return err
	}

	var out strings.Builder

	title := fmt.Sprintf("Superflow %s injection", report.Mode)
	if report.DryRun {
		title += " (dry run)"
	}
	out.WriteString(titleStyle.Render(title) + "\n")
	out.WriteString(pterm.Gray(report.Target) + "\n\n")

	if len(report.Results) > 0 {
		data := pterm.TableData{{"Outcome", "Target", "Detail"}}
		for _, res := range report.Results {
			data = append(data, []string{
				outcomeStyle(res.Outcome).Sprint(string(res.Outcome)),
				res.Target,
				detailFor(res),
			})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		out.WriteString(table + "\n\n")
	}

	for _, warn := range report.Warnings {
		out.WriteString(pterm.Yellow("warning: ") + warn.Error() + "\n")
	}

	out.WriteString(r.summaryBox(report.Summary()) + "\n")

	_, err := io.WriteString(w, out.String())
	return err
}

func (r *RichRenderer) summaryBox(s inject.Summary) string {
	border := colorOK
	switch {
	case s.Failed > 0:
		border = colorError
	case s.NoInsertionPoint > 0 || s.Skipped > 0:
		border = colorWarning
	}

	lines := []string{
		fmt.Sprintf("%d targets", s.Total),
		fmt.Sprintf("%d injected  %d updated  %d already present", s.Injected, s.Updated, s.Present()),
		fmt.Sprintf("%d no insertion point  %d skipped  %d failed", s.NoInsertionPoint, s.Skipped, s.Failed),
	}
	return boxStyle.BorderForeground(border).Render(strings.Join(lines, "\n"))
}

func outcomeStyle(o inject.Outcome) *pterm.Style {
	switch o {
	case inject.OutcomeInjected, inject.OutcomeUpdated:
		return pterm.NewStyle(pterm.FgGreen)
	case inject.OutcomeNoInsertionPoint, inject.OutcomeSkipped:
		return pterm.NewStyle(pterm.FgYellow)
	case inject.OutcomeFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}
