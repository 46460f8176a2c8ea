package summarize

import "strings"

const (
	fenceOpen  = "```json"
	fenceClose = "```"
)

// StripFence removes a ```json ... ``` wrapper when s is exactly that shape.
// Anything else, including surrounding whitespace, is returned unchanged.
func StripFence(s string) string {
	inner, ok := strings.CutPrefix(s, fenceOpen)
	if !ok {
		return s
	}
	inner, ok = strings.CutSuffix(inner, fenceClose)
	if !ok {
		return s
	}
	return inner
}
