package extract

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"log"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"

	"folio/internal/domain"
)

const (
	// Render at most this many pages; a resume longer than this rarely adds
	// signal and page images dominate the prompt token budget.
	maxRenderedPages = 5

	// 2x the 72 DPI base resolution, enough for the model to read body text.
	renderDPI = 144
)

func extractPDF(data []byte) (*domain.ExtractedContent, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ParseError{Format: "pdf", Err: err}
	}

	pageCount := reader.NumPage()
	var sb strings.Builder
	for i := 1; i <= pageCount; i++ {
		pageText, err := pdfPageText(reader, i)
		if err != nil {
			// A single unreadable page models a scanned or damaged page,
			// not a broken document.
			log.Printf("extract.extractPDF: page %d text extraction failed: %v", i, err)
			continue
		}
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(pageText)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return nil, domain.ErrEmptyExtraction
	}

	return &domain.ExtractedContent{
		Text:            text,
		Images:          renderPDFPages(data),
		SourcePageCount: pageCount,
	}, nil
}

// pdfPageText extracts the text layer of a single 1-based page. The pdf
// library panics on some malformed content streams, so the page boundary is
// also a recovery boundary.
func pdfPageText(reader *pdf.Reader, pageNum int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in pdf text extraction: %v", r)
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

// renderPDFPages rasterizes up to maxRenderedPages pages as PNG data URLs in
// page order. Rendering is best-effort: a failed page is logged and skipped,
// and a document that cannot be opened yields an empty slice, never an error.
func renderPDFPages(data []byte) []string {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		log.Printf("extract.renderPDFPages: opening pdf for rendering failed: %v", err)
		return []string{}
	}
	defer doc.Close()

	pages := doc.NumPage()
	if pages > maxRenderedPages {
		pages = maxRenderedPages
	}

	images := make([]string, 0, pages)
	for i := 0; i < pages; i++ {
		img, err := doc.ImageDPI(i, renderDPI)
		if err != nil {
			log.Printf("extract.renderPDFPages: rendering page %d failed: %v", i+1, err)
			continue
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			log.Printf("extract.renderPDFPages: encoding page %d failed: %v", i+1, err)
			continue
		}
		images = append(images, pngDataURL(buf.Bytes()))
	}
	return images
}

func pngDataURL(b []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b)
}
