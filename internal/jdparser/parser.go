package jdparser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// Parser runs the full extraction pipeline: loader -> text extractor ->
// field extractor. One call is independent and side-effect-free beyond its
// return value; persistence and validation are the caller's business.
type Parser struct {
	loader Loader
	logger *slog.Logger
}

func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse never returns a Go error: loader- and decode-level failures come
// back as Success=false with a human-readable message, and everything
// extraction-internal degrades to empty field values.
func (p *Parser) Parse(ctx context.Context, doc RawDocument) ParseResult {
	text, err := p.loader.Load(ctx, doc)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFormat) {
			p.logger.Warn("jdparser.unsupported_format", "content_type", doc.ContentType)
			return ParseResult{Success: false, Error: err.Error()}
		}
		p.logger.Error("jdparser.decode_failed", "content_type", doc.ContentType, "error", err)
		return ParseResult{Success: false, Error: fmt.Sprintf("failed to extract text: %v", err)}
	}

	rec := ExtractFields(text)
	p.logger.Info("jdparser.parsed",
		"content_type", doc.ContentType,
		"text_bytes", len(text),
		"title", rec.Title,
		"skills", len(rec.Skills),
	)
	return ParseResult{Success: true, Data: &rec, OriginalText: text}
}

// ParseFile reads path and parses it under the given content type. An
// unreadable file is a loader-level failure.
func (p *Parser) ParseFile(ctx context.Context, path, contentType string) ParseResult {
	data, err := os.ReadFile(path)
	if err != nil {
		p.logger.Error("jdparser.read_failed", "path", path, "error", err)
		return ParseResult{Success: false, Error: fmt.Sprintf("failed to read file: %v", err)}
	}
	return p.Parse(ctx, RawDocument{Content: data, ContentType: contentType})
}
