package pipeline

import "regexp"

// crlfOrCR matches Windows and old-Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings converts \r\n and \r to \n so line splitting and
// the heading heuristic see one line-ending convention.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
