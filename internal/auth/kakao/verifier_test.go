package kakao_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/auth/kakao"
	"folio/internal/domain"
)

func TestVerifyToken_Valid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"id": 1234567890,
			"kakao_account": {
				"email": "kim@example.com",
				"is_email_verified": true,
				"profile": {"nickname": "Kim Minsu"}
			}
		}`))
	}))
	defer server.Close()

	v := kakao.NewVerifierWithEndpoint(server.URL)
	claims, err := v.VerifyToken(context.Background(), "access-token")

	require.NoError(t, err)
	assert.Equal(t, "1234567890", claims.Subject)
	assert.Equal(t, "kim@example.com", claims.Email)
	assert.True(t, claims.EmailVerified)
	assert.Equal(t, "Kim Minsu", claims.FullName)
}

func TestVerifyToken_RejectedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"msg": "this access token does not exist", "code": -401}`))
	}))
	defer server.Close()

	v := kakao.NewVerifierWithEndpoint(server.URL)
	_, err := v.VerifyToken(context.Background(), "bad-token")

	assert.ErrorIs(t, err, domain.ErrSocialTokenInvalid)
}

func TestVerifyToken_MissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"kakao_account": {}}`))
	}))
	defer server.Close()

	v := kakao.NewVerifierWithEndpoint(server.URL)
	_, err := v.VerifyToken(context.Background(), "token")

	assert.ErrorIs(t, err, domain.ErrSocialTokenInvalid)
}

func TestProvider(t *testing.T) {
	assert.Equal(t, domain.AuthProviderKakao, kakao.NewVerifier().Provider())
}
