package display

import (
	"io"

	"github.com/superflow-dev/superflow-extension/pkg/inject"
)

// Renderer writes a report
type Renderer interface {
	Render(w io.Writer, report *inject.Report) error
}

// NewRenderer returns the renderer for a concrete format; FormatAuto falls
// back to text
func NewRenderer(f Format) Renderer {
	switch f {
	case FormatTerminal:
		return &RichRenderer{}
	case FormatJSON:
		return &JSONRenderer{Indent: "  "}
	default:
		return &TextRenderer{}
	}
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func detailFor(res inject.Result) string {
	switch {
	case res.Err != nil:
		return errText(res.Err)
	case res.Point != inject.NoneFound:
		return res.Point.String()
	default:
		return ""
	}
}
