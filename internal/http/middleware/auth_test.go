package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"issue-tracker/internal/auth"
	"issue-tracker/internal/http/api"
	mw "issue-tracker/internal/http/middleware"
	"issue-tracker/internal/models"
	repo "issue-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
)

type stubUsers struct {
	user *models.User
	err  error
}

func (s *stubUsers) GetById(ctx context.Context, userID int64) (*models.User, error) {
	return s.user, s.err
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorResponse {
	var resp api.ErrorResponse
	err := json.NewDecoder(rec.Body).Decode(&resp)
	assert.NoError(t, err)
	return resp
}

func nextCapture(captured **models.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := mw.UserFromContext(r.Context())
		if ok {
			*captured = actor
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ResolvesActor(t *testing.T) {
	tokens := auth.NewJWTManager("test-secret", time.Hour)
	token, err := tokens.Issue("alice", 1)
	assert.NoError(t, err)

	user := &models.User{ID: 1, Username: "alice", TeamID: 7}
	var captured *models.User

	handler := mw.Auth(tokens, &stubUsers{user: user})(nextCapture(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/issues/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user, captured)
}

func TestAuth_MissingToken(t *testing.T) {
	tokens := auth.NewJWTManager("test-secret", time.Hour)

	handler := mw.Auth(tokens, &stubUsers{})(nextCapture(new(*models.User)))

	for _, header := range []string{"", "Bearer ", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/issues/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, api.ErrCodeMissingToken, decodeError(t, rec).Error.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := auth.NewJWTManager("test-secret", time.Hour)
	forged, err := auth.NewJWTManager("other-secret", time.Hour).Issue("alice", 1)
	assert.NoError(t, err)

	handler := mw.Auth(tokens, &stubUsers{})(nextCapture(new(*models.User)))

	req := httptest.NewRequest(http.MethodGet, "/api/issues/", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, api.ErrCodeInvalidToken, decodeError(t, rec).Error.Code)
}

// A valid token whose subject no longer exists must not resolve.
func TestAuth_UnknownSubject(t *testing.T) {
	tokens := auth.NewJWTManager("test-secret", time.Hour)
	token, err := tokens.Issue("ghost", 99)
	assert.NoError(t, err)

	handler := mw.Auth(tokens, &stubUsers{err: repo.ErrNotFound})(nextCapture(new(*models.User)))

	req := httptest.NewRequest(http.MethodGet, "/api/issues/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, api.ErrCodeUnknownSubject, decodeError(t, rec).Error.Code)
}
