package jdparser

// ExtractFields produces a JobRecord from the full extracted text. Each
// field is populated independently; worst case every field is empty except
// Description, which always carries the complete untruncated source text.
// Extraction never returns an error.
func ExtractFields(text string) JobRecord {
	return JobRecord{
		Title:        firstMatch(titleRules, text),
		Company:      firstMatch(companyRules, text),
		Location:     firstMatch(locationRules, text),
		Salary:       firstMatch(salaryRules, text),
		Experience:   firstMatch(experienceRules, text),
		Skills:       extractSkills(text),
		Description:  text,
		Requirements: extractBulletSection(text, requirementsHeading),
		Benefits:     extractBulletSection(text, benefitsHeading),
	}
}
