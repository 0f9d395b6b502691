package inject

import "strings"

// HasMarker reports whether content already carries marker. The check is a
// case-sensitive substring match; an empty marker never matches.
func HasMarker(content, marker string) bool {
	if marker == "" {
		return false
	}
	return strings.Contains(content, marker)
}
