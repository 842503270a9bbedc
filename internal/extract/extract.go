// Package extract turns uploaded resume files (PDF, DOCX, plain text) into
// plain text plus a best-effort list of page/embedded images encoded as
// base64 data URLs.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"folio/internal/domain"
)

// ParseError wraps a format-specific extraction failure. The original cause
// is kept for logs; pipelines convert it into a user-facing message.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s document: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Extract dispatches on the declared file name (extension) with the content
// type as fallback and returns the extracted content.
//
// Text extraction failures surface as *ParseError; a document with no
// non-whitespace text at all yields domain.ErrEmptyExtraction. Image
// extraction is best-effort and never fails the call.
func Extract(data []byte, filename, contentType string) (*domain.ExtractedContent, error) {
	switch detectFormat(filename, contentType) {
	case "pdf":
		return extractPDF(data)
	case "docx":
		return extractDOCX(data)
	case "txt":
		return extractTXT(data)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

func detectFormat(filename, contentType string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "pdf"
	case ".docx":
		return "docx"
	case ".txt":
		return "txt"
	}
	switch contentType {
	case "application/pdf":
		return "pdf"
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return "docx"
	case "text/plain":
		return "txt"
	}
	return ""
}

func extractTXT(data []byte) (*domain.ExtractedContent, error) {
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyExtraction
	}
	return &domain.ExtractedContent{Text: text, Images: []string{}}, nil
}
