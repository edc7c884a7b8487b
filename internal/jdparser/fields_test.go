package jdparser

import (
	"reflect"
	"testing"
)

const sampleJD = `Job Title: Backend Engineer
Company: Acme Systems
Location: Bengaluru, India
Salary: ₹10,00,000 - ₹15,00,000 per annum
Experience: 3+ years required

We are hiring a backend engineer to build services in Golang with
PostgreSQL, deployed with Docker and Kubernetes behind a REST API.
A $500 joining bonus is paid after probation.

Requirements:
- Strong knowledge of Golang and PostgreSQL
- Experience with Docker and Kubernetes
- Familiarity with REST API design

Benefits:
- Health insurance
- Flexible hours
`

func TestExtractFields_LabeledFields(t *testing.T) {
	rec := ExtractFields(sampleJD)

	if rec.Title != "Backend Engineer" {
		t.Errorf("Title = %q, want %q", rec.Title, "Backend Engineer")
	}
	if rec.Company != "Acme Systems" {
		t.Errorf("Company = %q, want %q", rec.Company, "Acme Systems")
	}
	if rec.Location != "Bengaluru, India" {
		t.Errorf("Location = %q, want %q", rec.Location, "Bengaluru, India")
	}
	if rec.Experience != "3+ years required" {
		t.Errorf("Experience = %q, want %q", rec.Experience, "3+ years required")
	}
}

func TestExtractFields_LabeledSalaryBeatsCurrencyPattern(t *testing.T) {
	// The text contains both a labeled salary and an unlabeled "$500"
	// mention; label rules are listed first, so the label wins.
	rec := ExtractFields(sampleJD)
	want := "₹10,00,000 - ₹15,00,000 per annum"
	if rec.Salary != want {
		t.Errorf("Salary = %q, want %q", rec.Salary, want)
	}
}

func TestExtractFields_CurrencyFallbackSalary(t *testing.T) {
	rec := ExtractFields("Join us! We offer $80,000 - $100,000 per year and more.")
	want := "$80,000 - $100,000 per year"
	if rec.Salary != want {
		t.Errorf("Salary = %q, want %q", rec.Salary, want)
	}
}

func TestExtractFields_TitleRoleSuffixFallback(t *testing.T) {
	rec := ExtractFields("Senior Software Engineer\nAcme Systems is hiring.")
	if rec.Title != "Senior Software Engineer" {
		t.Errorf("Title = %q, want %q", rec.Title, "Senior Software Engineer")
	}
}

func TestExtractFields_TitleFallbackAnchoredToStart(t *testing.T) {
	// The role-suffix fallback only applies to the leading line.
	rec := ExtractFields("Come work with us.\nWe need a Senior Software Engineer")
	if rec.Title != "" {
		t.Errorf("Title = %q, want empty", rec.Title)
	}
}

func TestExtractFields_TitleFallbackRequiresSuffixAtLineEnd(t *testing.T) {
	// The leading line must end in the role suffix; trailing words after
	// the suffix disqualify it.
	rec := ExtractFields("Backend Engineer Intern\nAcme is hiring for the summer.")
	if rec.Title != "" {
		t.Errorf("Title = %q, want empty", rec.Title)
	}
}

func TestExtractFields_ExperienceYearsFallback(t *testing.T) {
	rec := ExtractFields("We need 5+ years of production Go experience.")
	want := "5+ years of production Go experience."
	if rec.Experience != want {
		t.Errorf("Experience = %q, want %q", rec.Experience, want)
	}
}

func TestExtractFields_SkillsInVocabularyOrder(t *testing.T) {
	rec := ExtractFields(sampleJD)
	// Vocabulary order, not text-occurrence order. "SQL" appears because
	// it is a substring of "PostgreSQL"; that is the documented substring
	// semantics of the vocabulary scan.
	want := []string{"Golang", "SQL", "PostgreSQL", "Docker", "Kubernetes", "REST API"}
	if !reflect.DeepEqual(rec.Skills, want) {
		t.Errorf("Skills = %v, want %v", rec.Skills, want)
	}
}

func TestExtractFields_SkillsCaseInsensitive(t *testing.T) {
	rec := ExtractFields("we want DOCKER and python people")
	want := []string{"Python", "Docker"}
	if !reflect.DeepEqual(rec.Skills, want) {
		t.Errorf("Skills = %v, want %v", rec.Skills, want)
	}
}

func TestExtractFields_RequirementsBullets(t *testing.T) {
	rec := ExtractFields(sampleJD)
	want := []string{
		"Strong knowledge of Golang and PostgreSQL",
		"Experience with Docker and Kubernetes",
		"Familiarity with REST API design",
	}
	if !reflect.DeepEqual(rec.Requirements, want) {
		t.Errorf("Requirements = %v, want %v", rec.Requirements, want)
	}
}

func TestExtractFields_BenefitsBullets(t *testing.T) {
	rec := ExtractFields(sampleJD)
	want := []string{"Health insurance", "Flexible hours"}
	if !reflect.DeepEqual(rec.Benefits, want) {
		t.Errorf("Benefits = %v, want %v", rec.Benefits, want)
	}
}

func TestExtractBulletSection_StopsAtFirstNonBullet(t *testing.T) {
	text := "Requirements:\n- one\n* two\n• three\nnot a bullet\n- four\n"
	got := extractBulletSection(text, requirementsHeading)
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractBulletSection = %v, want %v", got, want)
	}
}

func TestExtractBulletSection_NoHeading(t *testing.T) {
	got := extractBulletSection("- orphan bullet\n- another\n", benefitsHeading)
	if len(got) != 0 {
		t.Errorf("expected empty section without a heading, got %v", got)
	}
}

func TestExtractFields_EmptyTextDegradesToEmptyFields(t *testing.T) {
	rec := ExtractFields("")
	if rec.Title != "" || rec.Company != "" || rec.Location != "" ||
		rec.Salary != "" || rec.Experience != "" {
		t.Errorf("expected all scalar fields empty, got %+v", rec)
	}
	if len(rec.Skills) != 0 || len(rec.Requirements) != 0 || len(rec.Benefits) != 0 {
		t.Errorf("expected all sequence fields empty, got %+v", rec)
	}
	if rec.Description != "" {
		t.Errorf("Description = %q, want empty", rec.Description)
	}
}

func TestExtractFields_DescriptionIsFullText(t *testing.T) {
	rec := ExtractFields(sampleJD)
	if rec.Description != sampleJD {
		t.Error("Description must equal the complete source text, untruncated")
	}
}
