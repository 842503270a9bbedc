package google_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/auth/google"
	"folio/internal/domain"
)

func tokenInfoServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("id_token"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestVerifyToken_Valid(t *testing.T) {
	server := tokenInfoServer(t, http.StatusOK, `{
		"iss": "https://accounts.google.com",
		"aud": "folio-client-id",
		"sub": "google-sub-1",
		"email": "kim@example.com",
		"email_verified": "true",
		"name": "Kim Minsu"
	}`)
	defer server.Close()

	v := google.NewVerifierWithEndpoint("folio-client-id", server.URL)
	claims, err := v.VerifyToken(context.Background(), "id-token")

	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", claims.Subject)
	assert.Equal(t, "kim@example.com", claims.Email)
	assert.True(t, claims.EmailVerified)
	assert.Equal(t, "Kim Minsu", claims.FullName)
}

func TestVerifyToken_WrongAudience(t *testing.T) {
	server := tokenInfoServer(t, http.StatusOK, `{
		"iss": "accounts.google.com",
		"aud": "someone-elses-client-id",
		"sub": "google-sub-1",
		"email": "kim@example.com",
		"email_verified": "true"
	}`)
	defer server.Close()

	v := google.NewVerifierWithEndpoint("folio-client-id", server.URL)
	_, err := v.VerifyToken(context.Background(), "id-token")

	assert.ErrorIs(t, err, domain.ErrSocialTokenInvalid)
}

func TestVerifyToken_NoClientIDSkipsAudienceCheck(t *testing.T) {
	server := tokenInfoServer(t, http.StatusOK, `{
		"iss": "accounts.google.com",
		"aud": "any-aud",
		"sub": "google-sub-1",
		"email": "kim@example.com",
		"email_verified": "true"
	}`)
	defer server.Close()

	v := google.NewVerifierWithEndpoint("", server.URL)
	claims, err := v.VerifyToken(context.Background(), "id-token")

	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", claims.Subject)
}

func TestVerifyToken_WrongIssuer(t *testing.T) {
	server := tokenInfoServer(t, http.StatusOK, `{
		"iss": "https://evil.example.com",
		"aud": "folio-client-id",
		"sub": "google-sub-1"
	}`)
	defer server.Close()

	v := google.NewVerifierWithEndpoint("folio-client-id", server.URL)
	_, err := v.VerifyToken(context.Background(), "id-token")

	assert.ErrorIs(t, err, domain.ErrSocialTokenInvalid)
}

func TestVerifyToken_ExpiredToken(t *testing.T) {
	// Google answers 400 for expired or malformed ID tokens.
	server := tokenInfoServer(t, http.StatusBadRequest, `{"error": "invalid_token"}`)
	defer server.Close()

	v := google.NewVerifierWithEndpoint("folio-client-id", server.URL)
	_, err := v.VerifyToken(context.Background(), "expired")

	assert.ErrorIs(t, err, domain.ErrSocialTokenInvalid)
}

func TestVerifyToken_UnverifiedEmailPassedThrough(t *testing.T) {
	server := tokenInfoServer(t, http.StatusOK, `{
		"iss": "accounts.google.com",
		"aud": "folio-client-id",
		"sub": "google-sub-1",
		"email": "kim@example.com",
		"email_verified": "false"
	}`)
	defer server.Close()

	v := google.NewVerifierWithEndpoint("folio-client-id", server.URL)
	claims, err := v.VerifyToken(context.Background(), "id-token")

	// The verifier reports verification status; rejecting is the login
	// service's call.
	require.NoError(t, err)
	assert.False(t, claims.EmailVerified)
}

func TestProvider(t *testing.T) {
	assert.Equal(t, domain.AuthProviderGoogle, google.NewVerifier("x").Provider())
}
