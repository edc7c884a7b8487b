package jdparser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minTitleLen       = 3
	minCompanyLen     = 2
	minDescriptionLen = 50
)

// Validate checks the required-field constraints on a JobRecord. All checks
// run independently and every applicable error is collected. Validation is
// a data result, not a propagated error: a record that fails validation
// still came from a successful parse.
func Validate(rec JobRecord) ValidationResult {
	errs := make([]string, 0, 3)

	if utf8.RuneCountInString(strings.TrimSpace(rec.Title)) < minTitleLen {
		errs = append(errs, fmt.Sprintf("title must be at least %d characters", minTitleLen))
	}
	if utf8.RuneCountInString(strings.TrimSpace(rec.Company)) < minCompanyLen {
		errs = append(errs, fmt.Sprintf("company must be at least %d characters", minCompanyLen))
	}
	if utf8.RuneCountInString(rec.Description) < minDescriptionLen {
		errs = append(errs, fmt.Sprintf("description must be at least %d characters", minDescriptionLen))
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
