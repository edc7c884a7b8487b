package jdparser

import (
	"reflect"
	"testing"
	"time"
)

func TestBuildPostingPayload_Renames(t *testing.T) {
	now := time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC)
	rec := JobRecord{
		Title:        "Backend Engineer",
		Company:      "Acme",
		Location:     "Pune",
		Salary:       "12 LPA",
		Experience:   "3+ years",
		Skills:       []string{"Golang"},
		Description:  "desc",
		Requirements: []string{"req"},
		Benefits:     []string{"perk"},
	}
	p := BuildPostingPayload(rec, now)

	if p.CompanyName != "Acme" || p.SalaryRange != "12 LPA" || p.ExperienceRequired != "3+ years" {
		t.Errorf("renamed fields wrong: %+v", p)
	}
	if !reflect.DeepEqual(p.SkillsRequired, []string{"Golang"}) {
		t.Errorf("SkillsRequired = %v", p.SkillsRequired)
	}
	if p.Description != "desc" {
		t.Errorf("Description = %q", p.Description)
	}
}

func TestBuildPostingPayload_Defaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	p := BuildPostingPayload(JobRecord{}, now)

	if p.JobType != "Full-time" {
		t.Errorf("JobType = %q, want Full-time", p.JobType)
	}
	if p.WorkMode != "Hybrid" {
		t.Errorf("WorkMode = %q, want Hybrid", p.WorkMode)
	}
	if p.ExperienceRequired != "" {
		t.Errorf("ExperienceRequired = %q, want empty", p.ExperienceRequired)
	}
	// 30 days out, calendar date only
	if p.ApplicationDeadline != "2026-03-31" {
		t.Errorf("ApplicationDeadline = %q, want 2026-03-31", p.ApplicationDeadline)
	}
}

func TestBuildPostingPayload_NilSlicesBecomeEmpty(t *testing.T) {
	p := BuildPostingPayload(JobRecord{}, time.Now())
	if p.SkillsRequired == nil || p.Requirements == nil || p.Benefits == nil {
		t.Error("sequence fields must default to empty, not nil")
	}
	if len(p.SkillsRequired) != 0 || len(p.Requirements) != 0 || len(p.Benefits) != 0 {
		t.Errorf("sequence fields must be empty: %+v", p)
	}
}
