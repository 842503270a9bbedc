package port

import "context"

// SocialAuthClaims holds the verified claims from a social identity provider.
type SocialAuthClaims struct {
	Subject       string // Provider-specific user ID (e.g. Google "sub" claim)
	Email         string
	EmailVerified bool
	FullName      string
}

// SocialTokenVerifier validates a token issued by a social identity provider.
type SocialTokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*SocialAuthClaims, error)
	Provider() string
}
