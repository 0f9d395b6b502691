package display

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superflow-dev/superflow-extension/pkg/errors"
	"github.com/superflow-dev/superflow-extension/pkg/inject"
)

func sampleReport() *inject.Report {
	r := &inject.Report{
		Mode:     "files",
		Target:   "/publish",
		Duration: 1500 * time.Millisecond,
		Warnings: []error{errors.New(errors.ErrIOFailure, "cannot read directory")},
	}
	r.Add(inject.Result{Target: "/publish/index.html", Outcome: inject.OutcomeInjected, Point: inject.BeforeHeadClose})
	r.Add(inject.Result{Target: "/publish/empty.html", Outcome: inject.OutcomeNoInsertionPoint, Err: inject.ErrNoInsertionPoint})
	r.Add(inject.Result{Target: "/publish/locked.html", Outcome: inject.OutcomeFailed,
		Err: errors.New(errors.ErrIOFailure, "cannot write file")})
	return r
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatAuto},
		{"auto", FormatAuto},
		{"TERM", FormatTerminal},
		{"plain", FormatText},
		{"json", FormatJSON},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestFormatResolve(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatJSON.Resolve(nil))
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, FormatAuto.Resolve(nil))
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(FormatText).Render(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "files: /publish\n")
	assert.Contains(t, out, "injected")
	assert.Contains(t, out, "/publish/index.html (before-head-close)")
	assert.Contains(t, out, "skipped-no-insertion-point")
	assert.Contains(t, out, "warning: ")
	assert.Contains(t, out, "total 3: 1 injected, 0 updated, 0 already present, 1 no insertion point, 0 skipped, 1 failed")
}

func TestTextRendererNilReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{}).Render(&buf, nil))
	assert.Equal(t, "nothing to do\n", buf.String())
}

func TestRichRenderer(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(FormatTerminal).Render(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Superflow files injection")
	assert.Contains(t, out, "/publish/index.html")
	assert.Contains(t, out, "before-head-close")
	assert.Contains(t, out, "3 targets")
	assert.Contains(t, out, "1 failed")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(FormatJSON).Render(&buf, sampleReport()))

	var got struct {
		Mode       string         `json:"mode"`
		DurationMS int64          `json:"duration_ms"`
		Summary    inject.Summary `json:"summary"`
		Results    []struct {
			Target  string `json:"target"`
			Outcome string `json:"outcome"`
			Point   string `json:"insertion_point"`
			Code    string `json:"code"`
		} `json:"results"`
		Warnings []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "files", got.Mode)
	assert.Equal(t, int64(1500), got.DurationMS)
	assert.Equal(t, 3, got.Summary.Total)
	assert.Equal(t, 1, got.Summary.Failed)
	require.Len(t, got.Results, 3)
	assert.Equal(t, "before-head-close", got.Results[0].Point)
	assert.Equal(t, "NO_INSERTION_POINT", got.Results[1].Code)
	assert.Equal(t, "IO_FAILURE", got.Results[2].Code)
	assert.Len(t, got.Warnings, 1)
}
