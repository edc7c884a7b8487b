package jdparser_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/campushire/placement-portal/internal/jdparser"
)

const plainJD = `Job Title: Data Analyst
Company: Insight Labs
This role needs strong SQL and Python skills for day-to-day analysis work.
`

func parsePlain(t *testing.T, text, contentType string) jdparser.ParseResult {
	t.Helper()
	p := jdparser.NewParser(nil)
	return p.Parse(context.Background(), jdparser.RawDocument{
		Content:     []byte(text),
		ContentType: contentType,
	})
}

func TestParse_PlainTextSuccess(t *testing.T) {
	res := parsePlain(t, plainJD, "text/plain")
	if !res.Success {
		t.Fatalf("Parse failed: %s", res.Error)
	}
	if res.Data == nil {
		t.Fatal("Data is nil on success")
	}
	if res.Data.Title != "Data Analyst" {
		t.Errorf("Title = %q", res.Data.Title)
	}
	if res.OriginalText != plainJD {
		t.Error("OriginalText must be the full input text")
	}
	if res.Data.Description != res.OriginalText {
		t.Error("Description must equal the extracted text exactly")
	}
}

func TestParse_WordProcessorTypesTreatedAsText(t *testing.T) {
	for _, ct := range []string{
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	} {
		res := parsePlain(t, plainJD, ct)
		if !res.Success {
			t.Errorf("Parse(%q) failed: %s", ct, res.Error)
		}
	}
}

func TestParse_UnsupportedFormat(t *testing.T) {
	res := parsePlain(t, "whatever", "image/png")
	if res.Success {
		t.Fatal("expected failure for unrecognized content type")
	}
	if res.Data != nil {
		t.Error("Data must be nil on failure")
	}
	if !strings.Contains(res.Error, "unsupported") {
		t.Errorf("Error = %q, want an unsupported-format message", res.Error)
	}
}

func TestParse_MalformedPDFIsDecodeFailure(t *testing.T) {
	res := parsePlain(t, "not a pdf at all", "application/pdf")
	if res.Success {
		t.Fatal("expected decode failure")
	}
	if res.Data != nil {
		t.Error("no partial record on decode failure")
	}
	if res.Error == "" {
		t.Error("failure must carry a human-readable message")
	}
}

func TestParse_HTMLStripped(t *testing.T) {
	html := `<html><body>
<h1>Job Title: Frontend Developer</h1>
<script>alert("ignored")</script>
<p>Company: Webify</p>
</body></html>`
	res := parsePlain(t, html, "text/html")
	if !res.Success {
		t.Fatalf("Parse failed: %s", res.Error)
	}
	if res.Data.Title != "Frontend Developer" {
		t.Errorf("Title = %q", res.Data.Title)
	}
	if res.Data.Company != "Webify" {
		t.Errorf("Company = %q", res.Data.Company)
	}
	if strings.Contains(res.OriginalText, "alert") {
		t.Error("script content must be stripped")
	}
}

func TestParse_Idempotent(t *testing.T) {
	a := parsePlain(t, plainJD, "text/plain")
	b := parsePlain(t, plainJD, "text/plain")
	if !reflect.DeepEqual(a, b) {
		t.Error("parsing the same input twice must yield identical results")
	}
}

func TestParse_NeverPanics(t *testing.T) {
	inputs := []struct {
		text string
		ct   string
	}{
		{"", "text/plain"},
		{"", "application/pdf"},
		{"\x00\x01\x02", "application/pdf"},
		{"<p>", "text/html"},
		{"x", ""},
	}
	for _, in := range inputs {
		res := parsePlain(t, in.text, in.ct)
		// success or not, the result shape is always well-formed
		if res.Success && res.Data == nil {
			t.Errorf("Parse(%q, %q): success without data", in.text, in.ct)
		}
		if !res.Success && res.Error == "" {
			t.Errorf("Parse(%q, %q): failure without message", in.text, in.ct)
		}
	}
}
