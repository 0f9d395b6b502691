package inject

import (
	"strings"

	"github.com/superflow-dev/superflow-extension/pkg/errors"
)

// InsertionPoint is where a payload was spliced into a page
type InsertionPoint int

const (
	NoneFound InsertionPoint = iota
	BeforeHeadClose
	BeforeBodyClose
)

const (
	headClose = "</head>"
	bodyClose = "</body>"
)

func (p InsertionPoint) String() string {
	switch p {
	case BeforeHeadClose:
		return "before-head-close"
	case BeforeBodyClose:
		return "before-body-close"
	default:
		return "none-found"
	}
}

// ErrNoInsertionPoint is returned by Insert for content with neither anchor
var ErrNoInsertionPoint = errors.New(errors.ErrNoInsertionPoint, "content has no </head> or </body>")

// Insert splices the payload, followed by a newline, before the first </head>,
// or before the first </body> when there is no </head>. Anchors are matched
// literally, lowercase only. Without either anchor content is returned
// unchanged together with ErrNoInsertionPoint.
func Insert(content string, p Payload) (string, InsertionPoint, error) {
	if i := strings.Index(content, headClose); i >= 0 {
		return splice(content, i, p.Content), BeforeHeadClose, nil
	}
	if i := strings.Index(content, bodyClose); i >= 0 {
		return splice(content, i, p.Content), BeforeBodyClose, nil
	}
	return content, NoneFound, ErrNoInsertionPoint
}

func splice(content string, at int, fragment string) string {
	var b strings.Builder
	b.Grow(len(content) + len(fragment) + 1)
	b.WriteString(content[:at])
	b.WriteString(fragment)
	b.WriteString("\n")
	b.WriteString(content[at:])
	return b.String()
}
