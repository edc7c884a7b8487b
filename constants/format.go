package constants

import "strings"

// DocumentFormat classifies an uploaded job-description file.
type DocumentFormat string

const (
	PDF      DocumentFormat = "PDF"
	TEXT     DocumentFormat = "TEXT"
	DOCUMENT DocumentFormat = "DOCUMENT"
	HTML     DocumentFormat = "HTML"
)

// FileFormats holds the allowed values for the format field in ParseJob.
var FileFormats = []string{string(PDF), string(TEXT), string(DOCUMENT), string(HTML)}

// AllowedExtensions holds the default allowed file extensions for upload ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"txt":  {},
	"doc":  {},
	"docx": {},
	"html": {},
	"htm":  {},
}

// extToContentType maps ingested extensions to the declared content type the
// parser expects. Word-processor formats intentionally map to a "document"
// content type; the loader treats them as raw text.
var extToContentType = map[string]string{
	"pdf":  "application/pdf",
	"txt":  "text/plain",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"html": "text/html",
	"htm":  "text/html",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToContentType returns the declared content type for a file extension,
// or "" when the extension is not recognized.
func MapExtToContentType(ext string) string {
	return extToContentType[NormalizeExt(ext)]
}

// MapContentTypeToFormat classifies a declared content type. The
// word-processor check is a substring heuristic: any type mentioning
// "word" or "document" is treated as DOCUMENT. Returns "" for
// unrecognized types.
func MapContentTypeToFormat(contentType string) DocumentFormat {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case ct == "application/pdf":
		return PDF
	case ct == "text/plain":
		return TEXT
	case strings.Contains(ct, "html"):
		return HTML
	case strings.Contains(ct, "word"), strings.Contains(ct, "document"):
		return DOCUMENT
	default:
		return ""
	}
}
