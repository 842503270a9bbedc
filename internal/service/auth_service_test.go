package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/service"
	"folio/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-at-least-32-characters!!",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		Issuer:             "folio-test",
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestSignup_CreatesUserAndTokens(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "kim@example.com" &&
			u.Role == domain.RoleUser &&
			u.AuthProvider == domain.AuthProviderEmail &&
			u.PasswordHash != "password123"
	})).Return(nil)

	svc := service.NewAuthService(repo, new(mocks.MockEmailSender), testJWTConfig())
	user, tokens, err := svc.Signup(context.Background(), service.SignupInput{
		Email:    "kim@example.com",
		Password: "password123",
		FullName: "Kim Minsu",
	})

	require.NoError(t, err)
	assert.Equal(t, "kim@example.com", user.Email)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	repo.AssertExpectations(t)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

	svc := service.NewAuthService(repo, new(mocks.MockEmailSender), testJWTConfig())
	_, _, err := svc.Signup(context.Background(), service.SignupInput{
		Email:    "kim@example.com",
		Password: "password123",
		FullName: "Kim Minsu",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestLogin_Success(t *testing.T) {
	user := &domain.User{
		Email:        "kim@example.com",
		PasswordHash: hashPassword(t, "password123"),
		Role:         domain.RoleUser,
	}
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "kim@example.com").Return(user, nil)

	svc := service.NewAuthService(repo, new(mocks.MockEmailSender), testJWTConfig())
	tokens, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "kim@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	user := &domain.User{
		Email:        "kim@example.com",
		PasswordHash: hashPassword(t, "password123"),
	}
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "kim@example.com").Return(user, nil)

	svc := service.NewAuthService(repo, new(mocks.MockEmailSender), testJWTConfig())
	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "kim@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	svc := service.NewAuthService(repo, new(mocks.MockEmailSender), testJWTConfig())
	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_SocialAccountCannotUsePassword(t *testing.T) {
	user := &domain.User{
		Email:        "kim@example.com",
		PasswordHash: "!social-login",
	}
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "kim@example.com").Return(user, nil)

	svc := service.NewAuthService(repo, new(mocks.MockEmailSender), testJWTConfig())
	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "kim@example.com",
		Password: "anything-at-all",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestValidateToken_AccessToken(t *testing.T) {
	user := &domain.User{Email: "kim@example.com", Role: domain.RoleAdmin}
	svc := service.NewAuthService(new(mocks.MockUserRepo), new(mocks.MockEmailSender), testJWTConfig())

	tokens, err := svc.GenerateTokenPairForUser(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "kim@example.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestValidateToken_RejectsRefreshToken(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), new(mocks.MockEmailSender), testJWTConfig())

	tokens, err := svc.GenerateTokenPairForUser(&domain.User{Email: "kim@example.com"})
	require.NoError(t, err)

	// Refresh tokens carry a different audience and must not pass as access
	// tokens.
	_, err = svc.ValidateToken(tokens.RefreshToken)
	assert.Error(t, err)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), new(mocks.MockEmailSender), testJWTConfig())
	tokens, err := svc.GenerateTokenPairForUser(&domain.User{Email: "kim@example.com"})
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = "a-completely-different-secret-string"
	other := service.NewAuthService(new(mocks.MockUserRepo), new(mocks.MockEmailSender), otherCfg)

	_, err = other.ValidateToken(tokens.AccessToken)
	assert.Error(t, err)
}

func TestRefreshToken_IssuesNewPair(t *testing.T) {
	user := &domain.User{Email: "kim@example.com", Role: domain.RoleUser}
	repo := new(mocks.MockUserRepo)
	repo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	svc := service.NewAuthService(repo, new(mocks.MockEmailSender), testJWTConfig())
	tokens, err := svc.GenerateTokenPairForUser(user)
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	claims, err := svc.ValidateToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "kim@example.com", claims.Email)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), new(mocks.MockEmailSender), testJWTConfig())
	tokens, err := svc.GenerateTokenPairForUser(&domain.User{Email: "kim@example.com"})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), tokens.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestForgotPassword_SendsResetEmail(t *testing.T) {
	user := &domain.User{Email: "kim@example.com", FullName: "Kim Minsu"}
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "kim@example.com").Return(user, nil)

	sender := new(mocks.MockEmailSender)
	sender.On("SendPasswordResetEmail", mock.Anything, "kim@example.com", "Kim Minsu", mock.AnythingOfType("string")).
		Return(nil)

	svc := service.NewAuthService(repo, sender, testJWTConfig())
	err := svc.ForgotPassword(context.Background(), "kim@example.com")

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	sender := new(mocks.MockEmailSender)

	svc := service.NewAuthService(repo, sender, testJWTConfig())
	err := svc.ForgotPassword(context.Background(), "nobody@example.com")

	// Silent success: the endpoint must not reveal which emails exist.
	require.NoError(t, err)
	sender.AssertNotCalled(t, "SendPasswordResetEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResetPassword_RoundTrip(t *testing.T) {
	user := &domain.User{Email: "kim@example.com"}
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "kim@example.com").Return(user, nil)
	repo.On("UpdatePassword", mock.Anything, user.ID, mock.AnythingOfType("string")).Return(nil)

	var resetToken string
	sender := new(mocks.MockEmailSender)
	sender.On("SendPasswordResetEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { resetToken = args.String(3) }).
		Return(nil)

	svc := service.NewAuthService(repo, sender, testJWTConfig())
	require.NoError(t, svc.ForgotPassword(context.Background(), "kim@example.com"))
	require.NotEmpty(t, resetToken)

	err := svc.ResetPassword(context.Background(), resetToken, "new-password-1")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestResetPassword_RejectsAccessToken(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, new(mocks.MockEmailSender), testJWTConfig())

	tokens, err := svc.GenerateTokenPairForUser(&domain.User{Email: "kim@example.com"})
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), tokens.AccessToken, "new-password-1")
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestResetPassword_GarbageToken(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), new(mocks.MockEmailSender), testJWTConfig())

	err := svc.ResetPassword(context.Background(), "not-a-jwt", "new-password-1")
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
}
