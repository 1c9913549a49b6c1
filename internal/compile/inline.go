package compile

import "regexp"

var boldRe = regexp.MustCompile(`\*\*(.*?)\*\*`)

// stripBold collapses each well-formed **...** pair into its inner text, one
// pass, non-recursive. Single asterisks, unbalanced markers, and nested
// emphasis pass through literally. Block-level styling (italic quotes,
// monospace code) is applied by the emitter instead of being derived from
// the markers, so losing the markers here is the whole job.
func stripBold(s string) string {
	return boldRe.ReplaceAllString(s, "$1")
}
