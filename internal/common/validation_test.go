package common

import (
	"strings"
	"testing"
)

func TestValidatorCollectsAllErrors(t *testing.T) {
	v := NewValidator().
		Field("name", "", Required).
		Field("company_name", "X", MinLength(2)).
		Field("profile_id", "not-a-uuid", UUID)

	if !v.HasErrors() {
		t.Fatal("expected validation errors")
	}
	if got := len(v.Errors()); got != 3 {
		t.Fatalf("expected 3 errors, got %d: %s", got, v.ErrorMessage())
	}
}

func TestValidatorPassesValidInput(t *testing.T) {
	v := NewValidator().
		Field("name", "Acme Recruiter", Required).
		Field("company_name", "Acme Corp", Required, MinLength(2)).
		Field("profile_id", "8b7f6a40-9c14-4d26-9f0f-0f3f1c2d4e5a", UUID)

	if v.HasErrors() {
		t.Fatalf("unexpected errors: %s", v.ErrorMessage())
	}
}

func TestDateYYYYMMDD(t *testing.T) {
	tests := []struct {
		value  string
		wantOK bool
	}{
		{"2026-03-01", true},
		{"", true},
		{"  ", true},
		{"03/01/2026", false},
		{"2026-13-40", false},
	}
	for _, tt := range tests {
		err := DateYYYYMMDD("from_date", tt.value)
		if tt.wantOK && err != nil {
			t.Errorf("DateYYYYMMDD(%q) = %v, want nil", tt.value, err)
		}
		if !tt.wantOK && err == nil {
			t.Errorf("DateYYYYMMDD(%q) = nil, want error", tt.value)
		}
	}
}

func TestValidateAndReturnError(t *testing.T) {
	v := NewValidator().Field("profile_id", "", Required)
	err := ValidateAndReturnError(v)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "profile_id") {
		t.Errorf("error should name the field, got %q", err.Error())
	}

	ok := NewValidator().Field("profile_id", "x", Required)
	if err := ValidateAndReturnError(ok); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
