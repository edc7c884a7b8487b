package ingest

import "testing"

func TestAllowedExt(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{"pdf", true},
		{".pdf", true},
		{"PDF", true},
		{"txt", true},
		{"doc", true},
		{"docx", true},
		{"html", true},
		{"htm", true},
		{"png", false},
		{"exe", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := AllowedExt(tt.ext); got != tt.want {
			t.Errorf("AllowedExt(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/tmp/uploads/.DS_Store", true},
		{"/tmp/uploads/.cache", true},
		{"/tmp/uploads/jd.pdf", false},
		{"/tmp/.hidden/visible.txt", false},
	}
	for _, tt := range tests {
		if got := IsHidden(tt.path); got != tt.want {
			t.Errorf("IsHidden(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
