// Package naver validates Naver access tokens for social login.
package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"folio/internal/domain"
	"folio/internal/port"
)

const profileURL = "https://openapi.naver.com/v1/nid/me"

type profileResponse struct {
	ResultCode string `json:"resultcode"`
	Response   struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"response"`
}

// Verifier validates Naver access tokens by fetching the user profile.
type Verifier struct {
	endpoint   string
	httpClient *http.Client
}

// NewVerifier creates a new Naver access token verifier.
func NewVerifier() *Verifier {
	return NewVerifierWithEndpoint(profileURL)
}

// NewVerifierWithEndpoint creates a verifier pointing at a custom profile
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
		return nil, fmt.Errorf("creating profile request: %w", err)
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

	var info profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, domain.ErrSocialTokenInvalid
	}
	if info.ResultCode != "00" || info.Response.ID == "" {
		return nil, domain.ErrSocialTokenInvalid
	}

	// Naver only returns addresses it has verified itself.
	return &port.SocialAuthClaims{
		Subject:       info.Response.ID,
		Email:         info.Response.Email,
		EmailVerified: info.Response.Email != "",
		FullName:      info.Response.Name,
	}, nil
}

func (v *Verifier) Provider() string {
	return domain.AuthProviderNaver
}

// Compile-time check.
var _ port.SocialTokenVerifier = (*Verifier)(nil)
