package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUnsupportedFormat  = errors.New("unsupported file format")
	ErrEmptyExtraction    = errors.New("no text could be extracted from the document")
	ErrModelUnavailable   = errors.New("model credentials not configured")
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrSocialTokenInvalid = errors.New("social identity token invalid")
)
