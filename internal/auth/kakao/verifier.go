// Package kakao validates Kakao access tokens for social login.
package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"folio/internal/domain"
	"folio/internal/port"
)

const userMeURL = "https://kapi.kakao.com/v2/user/me"

type userMeResponse struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email           string `json:"email"`
		IsEmailVerified bool   `json:"is_email_verified"`
		Profile         struct {
			Nickname string `json:"nickname"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

// Verifier validates Kakao access tokens by fetching the user profile.
type Verifier struct {
	endpoint   string
	httpClient *http.Client
}

// NewVerifier creates a new Kakao access token verifier.
func NewVerifier() *Verifier {
	return NewVerifierWithEndpoint(userMeURL)
}

// NewVerifierWithEndpoint creates a verifier pointing at a custom user-me
// endpoint (for testing).
func NewVerifierWithEndpoint(endpoint string) *Verifier {
	return &Verifier{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (v *Verifier) VerifyToken(ctx context.Context, accessToken string) (*port.SocialAuthClaims, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, domain.ErrSocialTokenInvalid
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrSocialTokenInvalid
	}

	var info userMeResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, domain.ErrSocialTokenInvalid
	}
	if info.ID == 0 {
		return nil, domain.ErrSocialTokenInvalid
	}

	return &port.SocialAuthClaims{
		Subject:       strconv.FormatInt(info.ID, 10),
		Email:         info.KakaoAccount.Email,
		EmailVerified: info.KakaoAccount.IsEmailVerified,
		FullName:      info.KakaoAccount.Profile.Nickname,
	}, nil
}

func (v *Verifier) Provider() string {
	return domain.AuthProviderKakao
}

// Compile-time check.
var _ port.SocialTokenVerifier = (*Verifier)(nil)
