package jdparser

import (
	"regexp"
	"strings"
)

var (
	requirementsHeading = regexp.MustCompile(`(?i)^\s*(?:requirements?|qualifications?)\s*:?\s*$`)
	benefitsHeading     = regexp.MustCompile(`(?i)^\s*(?:benefits?|perks?)\s*:?\s*$`)
	bulletLine          = regexp.MustCompile(`^\s*[-•*]\s*(.+?)\s*$`)
)

// extractBulletSection finds the first line matching the heading and
// captures the immediately following bullet lines, markers stripped, in
// original order. Capture stops at the first non-bullet line or end of
// text. No heading means an empty section.
func extractBulletSection(text string, heading *regexp.Regexp) []string {
	lines := strings.Split(text, "\n")
	items := make([]string, 0, 4)
	for i, line := range lines {
		if !heading.MatchString(line) {
			continue
		}
		for _, next := range lines[i+1:] {
			m := bulletLine.FindStringSubmatch(next)
			if m == nil {
				break
			}
			items = append(items, m[1])
		}
		break
	}
	return items
}
