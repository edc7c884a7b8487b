package jdparser

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDFText decodes the embedded text layer of a PDF, page by page in
// ascending page order. Text runs on a page are joined with a single space;
// pages are joined with a newline. A PDF without a text layer yields an
// empty string, not an error. No OCR, no image handling.
func extractPDFText(ctx context.Context, data []byte) (text string, err error) {
	// The underlying decoder panics on some malformed inputs; surface
	// those as decode failures instead.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf decode: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf decode: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		runs := make([]string, 0, len(content.Text))
		for _, t := range content.Text {
			runs = append(runs, t.S)
		}
		if pageText := strings.Join(runs, " "); pageText != "" {
			pages = append(pages, pageText)
		}
	}
	return strings.Join(pages, "\n"), nil
}
