package jdparser

import (
	"context"
	"errors"
	"fmt"

	"github.com/campushire/placement-portal/constants"
)

// ErrUnsupportedFormat is returned when the declared content type matches
// none of the recognized classes. It is fatal to the parse call.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Loader is stage 1: raw document -> text. PDF bytes go through the
// embedded text-layer decoder, HTML through the markup stripper, and
// plain-text and word-processor content is read as-is. Word-processor
// binary formats get no structural parsing; treating them as raw text is
// a known limitation.
type Loader struct{}

// Load produces the extracted text for a document, classified by its
// declared content type.
func (l Loader) Load(ctx context.Context, doc RawDocument) (string, error) {
	switch constants.MapContentTypeToFormat(doc.ContentType) {
	case constants.PDF:
		return extractPDFText(ctx, doc.Content)
	case constants.HTML:
		return extractHTMLText(doc.Content)
	case constants.TEXT, constants.DOCUMENT:
		return string(doc.Content), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, doc.ContentType)
	}
}
