package inject

import (
	"fmt"
	"strings"

	"github.com/superflow-dev/superflow-extension/pkg/config"
	"github.com/superflow-dev/superflow-extension/pkg/errors"
)

// Payload is the fragment to inject and the marker that identifies it
type Payload struct {
	Content string
	Marker  string
}

// Validate checks that the marker is a literal substring of the content
func (p Payload) Validate() error {
	if p.Marker == "" {
		return errors.New(errors.ErrInvalidInput, "payload marker cannot be empty")
	}
	if !strings.Contains(p.Content, p.Marker) {
		return errors.New(errors.ErrInvalidInput, "payload content does not contain its marker").
			WithDetail("marker", p.Marker)
	}
	return nil
}

// ScriptTag builds the toolbar script tag; marker is emitted as a bare attribute
func ScriptTag(src, marker string) string {
	return fmt.Sprintf(`<script src="%s" %s defer></script>`, src, marker)
}

// PayloadFromConfig returns the configured payload: payload.content verbatim
// when set, otherwise a script tag for payload.script_url.
func PayloadFromConfig(cfg config.Payload) Payload {
	if cfg.Content != "" {
		return Payload{Content: cfg.Content, Marker: cfg.Marker}
	}
	return Payload{Content: ScriptTag(cfg.ScriptURL, cfg.Marker), Marker: cfg.Marker}
}
