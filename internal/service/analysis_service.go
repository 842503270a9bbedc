package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/extract"
	"folio/internal/port"
	"folio/internal/prompt"
	"folio/internal/structured"
)

// User-facing messages for extraction failures. Raw causes go to the logs
// only.
const (
	msgUnsupportedFormat = "Unsupported file format. (PDF, DOCX, TXT supported)"
	msgEmptyExtraction   = "Could not extract any text from the file. It may be empty or contain only images."
	msgFileTooLarge      = "The file exceeds the maximum allowed size."
	msgParseFailed       = "An error occurred while parsing the file."
)

// ParseResumeInput carries one uploaded resume file.
type ParseResumeInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// AnalysisService is the resume analysis pipeline: extraction of uploaded
// documents and model-backed structuring of resume content.
//
// Both methods return a tagged result map instead of an error: every failure
// path resolves to {"error": message}, and the HTTP layer always answers 200
// with that payload. Callers detect failure by inspecting the shape.
type AnalysisService interface {
	ParseResume(ctx context.Context, input ParseResumeInput) map[string]any
	AnalyzeResume(ctx context.Context, resumeText string, images []string) map[string]any
}

type analysisService struct {
	model   port.ChatModel
	storage port.ObjectStorage
	usage   UsageRecorder
	s3cfg   config.S3Config
}

// NewAnalysisService creates an AnalysisService. storage may be nil; resumes
// are then not archived.
func NewAnalysisService(model port.ChatModel, storage port.ObjectStorage, usage UsageRecorder, s3cfg config.S3Config) AnalysisService {
	return &analysisService{
		model:   model,
		storage: storage,
		usage:   usage,
		s3cfg:   s3cfg,
	}
}

func (s *analysisService) ParseResume(ctx context.Context, input ParseResumeInput) map[string]any {
	if max := s.s3cfg.MaxFileSizeMB * 1024 * 1024; max > 0 && int64(len(input.Data)) > max {
		return map[string]any{"error": msgFileTooLarge}
	}

	content, err := extract.Extract(input.Data, input.Filename, input.ContentType)
	if err != nil {
		log.Printf("analysisService.ParseResume: extraction of %q failed: %v", input.Filename, err)
		return map[string]any{"error": extractionMessage(err)}
	}

	s.archiveUpload(ctx, input)

	return map[string]any{
		"text":     content.Text,
		"filename": input.Filename,
		"images":   content.Images,
	}
}

func (s *analysisService) AnalyzeResume(ctx context.Context, resumeText string, images []string) map[string]any {
	s.usage.Record(ctx, domain.PromptTypeResumeAnalysis)

	payload := prompt.ResumeAnalysis(resumeText, images)
	resp, err := s.model.Invoke(ctx, payload)
	if err != nil {
		log.Printf("analysisService.AnalyzeResume: model invocation failed: %v", err)
		return map[string]any{"error": invocationMessage(err)}
	}

	text := structured.NormalizeToText(resp.Content)
	obj, err := structured.ExtractObject(text)
	if err != nil {
		log.Printf("analysisService.AnalyzeResume: %v", err)
		return map[string]any{"error": "Could not read structured data from the AI response. Please try again."}
	}

	// No required-key backfill on this path: the profile contract treats all
	// fields as optional, unlike the interview-answer contract.
	return obj
}

// archiveUpload stores the original upload for later reference. Best-effort:
// failures are logged, never surfaced.
func (s *analysisService) archiveUpload(ctx context.Context, input ParseResumeInput) {
	if s.storage == nil || s.s3cfg.Bucket == "" {
		return
	}
	key := fmt.Sprintf("resumes/%s/%s-%s", time.Now().UTC().Format("2006/01/02"), uuid.New(), input.Filename)
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(input.Data),
		ContentType: input.ContentType,
	})
	if err != nil {
		log.Printf("analysisService.archiveUpload: archiving %q failed: %v", input.Filename, err)
	}
}

func extractionMessage(err error) string {
	var parseErr *extract.ParseError
	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return msgUnsupportedFormat
	case errors.Is(err, domain.ErrEmptyExtraction):
		return msgEmptyExtraction
	case errors.As(err, &parseErr):
		return msgParseFailed
	default:
		return msgParseFailed
	}
}

func invocationMessage(err error) string {
	if errors.Is(err, domain.ErrModelUnavailable) {
		return "The AI model is not configured. Please contact the administrator."
	}
	return "The AI request failed. Please try again in a moment."
}
