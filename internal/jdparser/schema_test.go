package jdparser

import (
	"encoding/json"
	"testing"
	"time"
)

func TestPostingSchema_AcceptsFormattedPayload(t *testing.T) {
	payload := BuildPostingPayload(ExtractFields(sampleJD), time.Now())
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if err := ValidateJSONAgainstSchema(BuildPostingJSONSchema(), b); err != nil {
		t.Errorf("formatted payload must satisfy the posting schema: %v", err)
	}
}

func TestPostingSchema_RejectsBadDeadline(t *testing.T) {
	payload := BuildPostingPayload(JobRecord{}, time.Now())
	payload.ApplicationDeadline = "next month"
	b, _ := json.Marshal(payload)
	if err := ValidateJSONAgainstSchema(BuildPostingJSONSchema(), b); err == nil {
		t.Error("non-calendar deadline must fail schema validation")
	}
}

func TestPostingSchema_RejectsUnknownJobType(t *testing.T) {
	payload := BuildPostingPayload(JobRecord{}, time.Now())
	payload.JobType = "Gig"
	b, _ := json.Marshal(payload)
	if err := ValidateJSONAgainstSchema(BuildPostingJSONSchema(), b); err == nil {
		t.Error("job type outside the enum must fail schema validation")
	}
}
