package auth_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"issue-tracker/internal/http/api"
	"issue-tracker/internal/http/handlers"
	authh "issue-tracker/internal/http/handlers/auth"
	"issue-tracker/internal/http/handlers/mocks"
	repo "issue-tracker/internal/repository"
	"issue-tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Register

func TestAuthHandler_Register_Success(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := authh.NewAuthHandler(handlers.NewLogger(), mockService)

	reqBody := authh.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	expected := &api.UserSchema{ID: 1, Username: "alice", Email: "alice@example.com", TeamID: 7}
	mockService.On("Register", mock.Anything, "alice", "alice@example.com", "s3cret-pass").
		Return(expected, nil)

	h.Register(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.UserSchema
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, *expected, resp)
}

func TestAuthHandler_Register_BadJSON(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := authh.NewAuthHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("{invalid json")))
	w := httptest.NewRecorder()

	h.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := authh.NewAuthHandler(handlers.NewLogger(), mockService)

	reqBody := authh.RegisterRequest{
		Username: "alice",
		Email:    "not-an-email",
		Password: "s3cret-pass",
	}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := authh.NewAuthHandler(handlers.NewLogger(), mockService)

	reqBody := authh.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "s3cret-pass"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Register", mock.Anything, "alice", "alice@example.com", "s3cret-pass").
		Return(nil, repo.ErrUsernameExists)

	h.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeUsernameExists, resp.Error.Code)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := authh.NewAuthHandler(handlers.NewLogger(), mockService)

	reqBody := authh.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "s3cret-pass"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Register", mock.Anything, "alice", "alice@example.com", "s3cret-pass").
		Return(nil, repo.ErrEmailExists)

	h.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeEmailExists, resp.Error.Code)
}

func TestAuthHandler_Register_InviterHasNoTeam(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := authh.NewAuthHandler(handlers.NewLogger(), mockService)

	reqBody := authh.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "s3cret-pass"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Register", mock.Anything, "alice", "alice@example.com", "s3cret-pass").
		Return(nil, service.ErrInviterHasNoTeam)

	h.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeInviterHasNoTeam, resp.Error.Code)
}

func TestAuthHandler_Register_InternalError(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := authh.NewAuthHandler(handlers.NewLogger(), mockService)

	reqBody := authh.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "s3cret-pass"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Register", mock.Anything, "alice", "alice@example.com", "s3cret-pass").
		Return(nil, errors.New("db error"))

	h.Register(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

// Login

func TestAuthHandler_Login_Success(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := authh.NewAuthHandler(handlers.NewLogger(), mockService)

	reqBody := authh.LoginRequest{Username: "alice", Password: "s3cret-pass"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	expected := &api.LoginResponse{
		AccessToken: "signed-token",
		TokenType:   "bearer",
		User:        api.UserSchema{ID: 1, Username: "alice", Email: "alice@example.com", TeamID: 7},
	}
	mockService.On("Login", mock.Anything, "alice", "s3cret-pass").Return(expected, nil)

	h.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.LoginResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, *expected, resp)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := authh.NewAuthHandler(handlers.NewLogger(), mockService)

	reqBody := authh.LoginRequest{Username: "alice", Password: "wrong-pass"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Login", mock.Anything, "alice", "wrong-pass").
		Return(nil, service.ErrInvalidCredentials)

	h.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeInvalidCreds, resp.Error.Code)
}

func TestAuthHandler_Login_ValidationError(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := authh.NewAuthHandler(handlers.NewLogger(), mockService)

	reqBody := authh.LoginRequest{Username: "", Password: "s3cret-pass"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestAuthHandler_Login_InternalError(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := authh.NewAuthHandler(handlers.NewLogger(), mockService)

	reqBody := authh.LoginRequest{Username: "alice", Password: "s3cret-pass"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Login", mock.Anything, "alice", "s3cret-pass").
		Return(nil, errors.New("db error"))

	h.Login(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}
