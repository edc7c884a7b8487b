package constants_test

import (
	"testing"

	"github.com/campushire/placement-portal/constants"
)

func TestMapContentTypeToFormat(t *testing.T) {
	cases := []struct {
		ct   string
		want constants.DocumentFormat
	}{
		{"application/pdf", constants.PDF},
		{"text/plain", constants.TEXT},
		{"text/html", constants.HTML},
		{"application/msword", constants.DOCUMENT},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", constants.DOCUMENT},
		{"application/x-anything-document", constants.DOCUMENT},
		{"image/png", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := constants.MapContentTypeToFormat(c.ct); got != c.want {
			t.Errorf("MapContentTypeToFormat(%q) = %q, want %q", c.ct, got, c.want)
		}
	}
}

func TestMapExtToContentType(t *testing.T) {
	if got := constants.MapExtToContentType(".PDF"); got != "application/pdf" {
		t.Errorf("MapExtToContentType(.PDF) = %q", got)
	}
	if got := constants.MapExtToContentType("xyz"); got != "" {
		t.Errorf("MapExtToContentType(xyz) = %q, want empty", got)
	}
}

func TestNormalizeExt(t *testing.T) {
	if got := constants.NormalizeExt(".Docx"); got != "docx" {
		t.Errorf("NormalizeExt(.Docx) = %q", got)
	}
}
