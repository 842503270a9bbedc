package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash is a bcrypt hash, or a fixed
// sentinel for social accounts that never log in with a password.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	AuthProvider string    `db:"auth_provider" json:"auth_provider"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Portfolio is the user's generated portfolio document, stored as an opaque
// JSON blob so the frontend owns its shape.
type Portfolio struct {
	UserID    uuid.UUID       `db:"user_id" json:"user_id"`
	Data      json.RawMessage `db:"data" json:"data"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// Notice is an announcement shown to users.
type Notice struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TemplateConfig is a named configuration blob for frontend portfolio templates.
type TemplateConfig struct {
	Key       string          `db:"key" json:"key"`
	Value     json.RawMessage `db:"value" json:"value"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// UsageEvent records a single model invocation for admin statistics.
type UsageEvent struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PromptType string    `db:"prompt_type" json:"prompt_type"`
	OccurredAt time.Time `db:"occurred_at" json:"occurred_at"`
}

// UsageStat is a daily aggregate of usage events for one prompt type.
type UsageStat struct {
	Day        time.Time `db:"day" json:"day"`
	PromptType string    `db:"prompt_type" json:"prompt_type"`
	Count      int       `db:"count" json:"count"`
}

// ExtractedContent is the result of extracting one uploaded document.
// Images are base64 data URLs in document order. SourcePageCount is only set
// for paginated formats (PDF); DOCX and plain text have no page concept and
// leave it zero. It is created per call and never mutated afterwards.
type ExtractedContent struct {
	Text            string   `json:"text"`
	Images          []string `json:"images"`
	SourcePageCount int      `json:"source_page_count"`
}

// PromptPayload is an assembled instruction set for one model call. It is a
// pure value: the same builder inputs always produce the same payload.
// Images, when present, follow extraction order and make the call multimodal.
type PromptPayload struct {
	System string
	User   string
	Images []string
}

// RawModelResponse carries the provider's response content before text
// normalization. Content is either a plain string or an ordered []any of
// content parts (maps with a "text" field for text parts).
type RawModelResponse struct {
	Content any
}

// CandidateProfile documents the JSON shape the resume-analysis prompt asks
// the model for. The analysis pipeline returns the parsed object as-is (all
// fields optional from the model's perspective); this type exists for API
// documentation and for callers that want a typed view.
type CandidateProfile struct {
	Name          string           `json:"name"`
	Phone         string           `json:"phone"`
	Email         string           `json:"email"`
	Link          string           `json:"link"`
	Intro         string           `json:"intro"`
	CareerSummary string           `json:"career_summary"`
	Skills        []string         `json:"skills"`
	Projects      []ProfileProject `json:"projects"`
}

// ProfileProject is one project entry inside a CandidateProfile.
type ProfileProject struct {
	Title    string `json:"title"`
	Desc     string `json:"desc"`
	Duration string `json:"duration"`
}
