package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"folio/internal/domain"
	"folio/internal/port"
	"folio/internal/service"
	"folio/mocks"
)

func newSocialService(verifier port.SocialTokenVerifier, repo port.UserRepository) service.SocialAuthService {
	authSvc := service.NewAuthService(new(mocks.MockUserRepo), new(mocks.MockEmailSender), testJWTConfig())
	return service.NewSocialAuthService(
		map[string]port.SocialTokenVerifier{"google": verifier},
		repo,
		authSvc,
	)
}

func TestSocialLogin_CreatesNewUser(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	verifier.On("VerifyToken", mock.Anything, "id-token").Return(&port.SocialAuthClaims{
		Subject:       "google-sub-1",
		Email:         "kim@example.com",
		EmailVerified: true,
		FullName:      "Kim Minsu",
	}, nil)

	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "kim@example.com").Return(nil, domain.ErrNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "kim@example.com" &&
			u.AuthProvider == "google" &&
			u.PasswordHash == "!social-login"
	})).Return(nil)

	svc := newSocialService(verifier, repo)
	out, err := svc.SocialLogin(context.Background(), service.SocialLoginInput{Provider: "google", Token: "id-token"})

	require.NoError(t, err)
	assert.True(t, out.IsNewUser)
	assert.Equal(t, "Kim Minsu", out.User.FullName)
	assert.NotEmpty(t, out.Tokens.AccessToken)
	repo.AssertExpectations(t)
}

func TestSocialLogin_LinksExistingAccount(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	verifier.On("VerifyToken", mock.Anything, "id-token").Return(&port.SocialAuthClaims{
		Email:         "kim@example.com",
		EmailVerified: true,
	}, nil)

	existing := &domain.User{Email: "kim@example.com", AuthProvider: domain.AuthProviderEmail}
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "kim@example.com").Return(existing, nil)

	svc := newSocialService(verifier, repo)
	out, err := svc.SocialLogin(context.Background(), service.SocialLoginInput{Provider: "google", Token: "id-token"})

	require.NoError(t, err)
	assert.False(t, out.IsNewUser)
	assert.Same(t, existing, out.User)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSocialLogin_UnverifiedEmailRejected(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	verifier.On("VerifyToken", mock.Anything, mock.Anything).Return(&port.SocialAuthClaims{
		Email:         "kim@example.com",
		EmailVerified: false,
	}, nil)

	svc := newSocialService(verifier, new(mocks.MockUserRepo))
	_, err := svc.SocialLogin(context.Background(), service.SocialLoginInput{Provider: "google", Token: "id-token"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not verified")
}

func TestSocialLogin_InvalidToken(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	verifier.On("VerifyToken", mock.Anything, mock.Anything).Return(nil, domain.ErrSocialTokenInvalid)

	svc := newSocialService(verifier, new(mocks.MockUserRepo))
	_, err := svc.SocialLogin(context.Background(), service.SocialLoginInput{Provider: "google", Token: "bad"})

	assert.ErrorIs(t, err, domain.ErrSocialTokenInvalid)
}

func TestSocialLogin_UnknownProvider(t *testing.T) {
	svc := newSocialService(new(mocks.MockSocialTokenVerifier), new(mocks.MockUserRepo))

	_, err := svc.SocialLogin(context.Background(), service.SocialLoginInput{Provider: "github", Token: "tok"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported social auth provider")
}
