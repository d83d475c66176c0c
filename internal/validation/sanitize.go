package validation

import "html"

// Sanitize makes arbitrary user input safe for embedding into rendered
// markup by entity-escaping every markup-significant character
// (<, >, &, and both quote styles). Applied to every user-supplied string
// before it is echoed anywhere in the interface.
func Sanitize(input string) string {
	return html.EscapeString(input)
}
