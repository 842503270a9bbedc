package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
	"folio/internal/handler"
	"folio/internal/service"
	"folio/mocks"
)

func newAuthRouter(authSvc service.AuthService) *gin.Engine {
	r := gin.New()
	h := handler.NewAuthHandler(authSvc, nil)
	r.POST("/api/v1/auth/signup", h.Signup)
	r.POST("/api/v1/auth/login", h.Login)
	r.POST("/api/v1/auth/forgot-password", h.ForgotPassword)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupEndpoint_Created(t *testing.T) {
	svc := new(mocks.MockAuthService)
	svc.On("Signup", mock.Anything, service.SignupInput{
		Email:    "kim@example.com",
		Password: "password123",
		FullName: "Kim Minsu",
	}).Return(
		&domain.User{Email: "kim@example.com", FullName: "Kim Minsu"},
		&service.TokenPair{AccessToken: "acc", RefreshToken: "ref", ExpiresAt: time.Now()},
		nil,
	)

	w := postJSON(newAuthRouter(svc),
		"/api/v1/auth/signup",
		`{"email": "kim@example.com", "password": "password123", "full_name": "Kim Minsu"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	svc.AssertExpectations(t)
}

func TestSignupEndpoint_DuplicateEmail(t *testing.T) {
	svc := new(mocks.MockAuthService)
	svc.On("Signup", mock.Anything, mock.Anything).Return(nil, nil, domain.ErrDuplicateEmail)

	w := postJSON(newAuthRouter(svc),
		"/api/v1/auth/signup",
		`{"email": "kim@example.com", "password": "password123", "full_name": "Kim Minsu"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "DUPLICATE_EMAIL")
}

func TestSignupEndpoint_ValidationError(t *testing.T) {
	svc := new(mocks.MockAuthService)

	// Password below the 8-character minimum.
	w := postJSON(newAuthRouter(svc),
		"/api/v1/auth/signup",
		`{"email": "kim@example.com", "password": "short", "full_name": "Kim"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	svc := new(mocks.MockAuthService)
	svc.On("Login", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidCredentials)

	w := postJSON(newAuthRouter(svc),
		"/api/v1/auth/login",
		`{"email": "kim@example.com", "password": "wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}

func TestForgotPasswordEndpoint_AlwaysNeutralMessage(t *testing.T) {
	svc := new(mocks.MockAuthService)
	svc.On("ForgotPassword", mock.Anything, "nobody@example.com").Return(nil)

	w := postJSON(newAuthRouter(svc),
		"/api/v1/auth/forgot-password",
		`{"email": "nobody@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "If the address is registered")
}
