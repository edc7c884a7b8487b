package jdparser

import (
	"regexp"
	"strings"
)

// Each scalar field carries an ordered rule list evaluated against the full
// text. The first rule that matches wins and its first capture group,
// trimmed, becomes the field value; later rules are never consulted once
// one matches. Label-based rules are listed before pattern fallbacks so an
// explicit label always takes precedence.

var titleRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)job\s*title\s*:\s*(.+)`),
	regexp.MustCompile(`(?i)position\s*:\s*(.+)`),
	regexp.MustCompile(`(?i)\brole\s*:\s*(.+)`),
	// fallback: a leading line ending in a known job-role suffix,
	// anchored to the start of the text
	regexp.MustCompile(`(?im)\A(.+(?:developer|engineer|manager|analyst|specialist|coordinator))$`),
}

var companyRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)company\s*(?:name)?\s*:\s*(.+)`),
	regexp.MustCompile(`(?i)organi[sz]ation\s*:\s*(.+)`),
	regexp.MustCompile(`(?i)employer\s*:\s*(.+)`),
}

var locationRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)location\s*:\s*(.+)`),
	regexp.MustCompile(`(?i)based\s+(?:in|at)\s*:?\s*(.+)`),
	regexp.MustCompile(`(?i)\bcity\s*:\s*(.+)`),
}

var salaryRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)salary\s*(?:range)?\s*:\s*(.+)`),
	regexp.MustCompile(`(?i)compensation\s*:\s*(.+)`),
	regexp.MustCompile(`(?i)\bctc\s*:\s*(.+)`),
	regexp.MustCompile(`(?i)\bpay\s*(?:range)?\s*:\s*(.+)`),
	// unlabeled currency mentions, $ or ₹, optionally a range with a unit
	regexp.MustCompile(`(?i)([$₹]\s*[0-9][0-9,.]*(?:\s*(?:-|–|to)\s*[$₹]?\s*[0-9][0-9,.]*)?(?:\s*(?:lpa|k|per\s+(?:annum|year|month)|/\s*(?:year|yr|month|mo)))?)`),
	regexp.MustCompile(`(?i)([0-9][0-9,.]*\s*(?:-|–|to)\s*[0-9][0-9,.]*\s*(?:lpa|lakhs?|lacs?))`),
}

var experienceRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)experience\s*:\s*(.+)`),
	// fallback: "N+ years ..." with no explicit label
	regexp.MustCompile(`(?i)(\d+\s*\+?\s*(?:-|–|to)?\s*\d*\s*years?[^\n]*)`),
}

// firstMatch applies an ordered rule list and returns the first rule's
// first capture group, trimmed, or "" when no rule matches.
func firstMatch(rules []*regexp.Regexp, text string) string {
	for _, re := range rules {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
