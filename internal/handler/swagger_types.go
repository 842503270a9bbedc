package handler

import (
	"encoding/json"
	"time"

	"folio/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// SignupRequest represents the signup request body.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email" example:"kim.minsu@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"securepassword123"`
	FullName string `json:"full_name" binding:"required" example:"Kim Minsu"`
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"kim.minsu@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// SocialLoginRequest represents the social login request body.
type SocialLoginRequest struct {
	Provider string `json:"provider" binding:"required" example:"google" enums:"google,kakao,naver"`
	Token    string `json:"token" binding:"required" example:"ya29.a0AfH6SMB..."`
}

// ForgotPasswordRequest represents the forgot-password request body.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"kim.minsu@example.com"`
}

// ResetPasswordRequest represents the reset-password request body.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	NewPassword string `json:"new_password" binding:"required,min=8" example:"newsecurepassword"`
}

// SavePortfolioRequest represents the save portfolio request body.
type SavePortfolioRequest struct {
	Data json.RawMessage `json:"data" binding:"required" swaggertype:"object"`
}

// NoticeRequest represents the create/update notice request body.
type NoticeRequest struct {
	Title    string `json:"title" binding:"required" example:"Scheduled maintenance"`
	Body     string `json:"body" binding:"required" example:"The service will be unavailable on Sunday 02:00-04:00 KST."`
	IsActive bool   `json:"is_active" example:"true"`
}

// SetTemplateConfigRequest represents the set template config request body.
type SetTemplateConfigRequest struct {
	Value json.RawMessage `json:"value" binding:"required" swaggertype:"object"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2026-08-28T10:30:00Z"`
}

// SignupResponse represents the account-created response.
type SignupResponse struct {
	User   domain.User   `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

// SocialLoginResponse represents the social login response.
type SocialLoginResponse struct {
	User      domain.User   `json:"user"`
	Tokens    TokenResponse `json:"tokens"`
	IsNewUser bool          `json:"is_new_user" example:"false"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// SavedResponse represents a save confirmation.
type SavedResponse struct {
	Saved bool `json:"saved" example:"true"`
}

// DeletedResponse represents a delete confirmation.
type DeletedResponse struct {
	Deleted bool `json:"deleted" example:"true"`
}

// OverviewResponse represents the admin statistics overview.
type OverviewResponse struct {
	TotalUsers      int `json:"total_users" example:"1204"`
	TotalPortfolios int `json:"total_portfolios" example:"861"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
