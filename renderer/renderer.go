// Package renderer builds the markdown views of the client: the holdings
// table and the trade receipt. The cmd package pushes the result through a
// terminal markdown renderer.
package renderer

import "strings"

// escape neutralizes pipe characters so free-text fields cannot break the
// table layout.
func escape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
