package jdparser

import (
	"strings"
	"testing"
)

func validRecord() JobRecord {
	return JobRecord{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: strings.Repeat("x", 60),
	}
}

func TestValidate_ValidRecord(t *testing.T) {
	res := Validate(validRecord())
	if !res.IsValid {
		t.Errorf("expected valid, got errors %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("Errors = %v, want none", res.Errors)
	}
}

func TestValidate_ShortTitleOnly(t *testing.T) {
	rec := validRecord()
	rec.Title = "Go" // 2 chars, below the minimum of 3
	res := Validate(rec)
	if res.IsValid {
		t.Error("expected invalid")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("Errors = %v, want exactly one", res.Errors)
	}
	if !strings.Contains(res.Errors[0], "title") {
		t.Errorf("error %q should mention title", res.Errors[0])
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	res := Validate(JobRecord{})
	if res.IsValid {
		t.Error("expected invalid")
	}
	if len(res.Errors) != 3 {
		t.Errorf("Errors = %v, want all three constraint failures", res.Errors)
	}
}

func TestValidate_TitleTrimmedBeforeLengthCheck(t *testing.T) {
	rec := validRecord()
	rec.Title = "  ab  " // trims to 2 chars
	res := Validate(rec)
	if res.IsValid {
		t.Error("expected invalid: trimmed title is below the minimum")
	}
}

func TestValidate_DescriptionBoundary(t *testing.T) {
	rec := validRecord()
	rec.Description = strings.Repeat("y", 50)
	if res := Validate(rec); !res.IsValid {
		t.Errorf("50-char description should pass, got %v", res.Errors)
	}
	rec.Description = strings.Repeat("y", 49)
	if res := Validate(rec); res.IsValid {
		t.Error("49-char description should fail")
	}
}
