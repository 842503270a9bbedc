package port

import "context"

// EmailSender defines the contract for sending transactional email.
type EmailSender interface {
	SendPasswordResetEmail(ctx context.Context, toEmail, toName, resetToken string) error
}
