package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"folio/internal/domain"
	"folio/internal/port"
)

// SocialLoginInput is the DTO for social login requests.
type SocialLoginInput struct {
	Provider string `json:"provider" binding:"required"`
	Token    string `json:"token" binding:"required"`
}

// SocialLoginOutput contains the results of a social login.
type SocialLoginOutput struct {
	User      *domain.User `json:"user"`
	Tokens    *TokenPair   `json:"tokens"`
	IsNewUser bool         `json:"is_new_user"`
}

// SocialAuthService defines the social authentication contract. Accounts are
// keyed by verified email: an existing email account is linked to the
// provider on first social login, otherwise a new account is created.
type SocialAuthService interface {
	SocialLogin(ctx context.Context, input SocialLoginInput) (*SocialLoginOutput, error)
}

type socialAuthService struct {
	verifiers map[string]port.SocialTokenVerifier
	userRepo  port.UserRepository
	authSvc   AuthService
}

// NewSocialAuthService creates a new SocialAuthService.
func NewSocialAuthService(
	verifiers map[string]port.SocialTokenVerifier,
	userRepo port.UserRepository,
	authSvc AuthService,
) SocialAuthService {
	return &socialAuthService{
		verifiers: verifiers,
		userRepo:  userRepo,
		authSvc:   authSvc,
	}
}

func (s *socialAuthService) SocialLogin(ctx context.Context, input SocialLoginInput) (*SocialLoginOutput, error) {
	verifier, ok := s.verifiers[input.Provider]
	if !ok {
		return nil, fmt.Errorf("unsupported social auth provider: %s", input.Provider)
	}

	claims, err := verifier.VerifyToken(ctx, input.Token)
	if err != nil {
		return nil, domain.ErrSocialTokenInvalid
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("no email returned by %s", input.Provider)
	}
	if !claims.EmailVerified {
		return nil, fmt.Errorf("email not verified by %s", input.Provider)
	}

	existing, err := s.userRepo.GetByEmail(ctx, claims.Email)
	if err == nil {
		tokens, tokenErr := s.authSvc.GenerateTokenPairForUser(existing)
		if tokenErr != nil {
			return nil, fmt.Errorf("generating tokens: %w", tokenErr)
		}
		return &SocialLoginOutput{User: existing, Tokens: tokens, IsNewUser: false}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        claims.Email,
		PasswordHash: socialAccountPasswordHash,
		FullName:     claims.FullName,
		Role:         domain.RoleUser,
		AuthProvider: input.Provider,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	log.Printf("socialAuthService.SocialLogin: created user via %s", input.Provider)

	tokens, err := s.authSvc.GenerateTokenPairForUser(user)
	if err != nil {
		return nil, fmt.Errorf("generating tokens: %w", err)
	}
	return &SocialLoginOutput{User: user, Tokens: tokens, IsNewUser: true}, nil
}
