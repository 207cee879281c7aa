package pipeline

import "strings"

// TrimLeadingHeading removes the leading level-1 heading and its tagline
// paragraph from a document split into lines.
//
// The template header already presents the project name and tagline, so
// rendering them again in the body would duplicate them on the page.
// The heuristic: find the first line starting with "# "; skip any blank
// lines after it; skip the first contiguous run of non-blank lines (the
// tagline paragraph); skip any further blank lines. The remaining lines
// are the retained body.
//
// Only the first non-blank run after the heading is treated as the
// tagline; subsequent paragraphs are body content and are kept. A
// document with no level-1 heading is returned unchanged. A document
// consisting solely of a heading yields an empty result.
func TrimLeadingHeading(lines []string) []string {
	h := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "# ") {
			h = i
			break
		}
	}
	if h == -1 {
		return lines
	}

	i := h + 1
	for i < len(lines) && isBlankLine(lines[i]) {
		i++
	}
	// Tagline paragraph: the first contiguous non-blank run, if any.
	for i < len(lines) && !isBlankLine(lines[i]) {
		i++
	}
	for i < len(lines) && isBlankLine(lines[i]) {
		i++
	}

	return lines[i:]
}

// isBlankLine returns true if the line is empty or contains only whitespace.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}
