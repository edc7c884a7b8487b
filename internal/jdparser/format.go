package jdparser

import (
	"time"

	"github.com/campushire/placement-portal/constants"
)

// BuildPostingPayload maps a JobRecord into the canonical posting payload.
// Total function, no failure mode: missing fields default to their empty
// value, jobType and workMode to the fixed defaults, and the application
// deadline to now + 30 days as a calendar date.
func BuildPostingPayload(rec JobRecord, now time.Time) JobPostingPayload {
	return JobPostingPayload{
		Title:               rec.Title,
		CompanyName:         rec.Company,
		Location:            rec.Location,
		SalaryRange:         rec.Salary,
		ExperienceRequired:  rec.Experience,
		SkillsRequired:      emptyIfNil(rec.Skills),
		Description:         rec.Description,
		Requirements:        emptyIfNil(rec.Requirements),
		Benefits:            emptyIfNil(rec.Benefits),
		JobType:             constants.DefaultJobType,
		WorkMode:            constants.DefaultWorkMode,
		ApplicationDeadline: now.AddDate(0, 0, constants.DeadlineDays).Format(constants.DeadlineLayout),
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
