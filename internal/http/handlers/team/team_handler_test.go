package team_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"issue-tracker/internal/http/api"
	"issue-tracker/internal/http/handlers"
	"issue-tracker/internal/http/handlers/mocks"
	teamh "issue-tracker/internal/http/handlers/team"
	mw "issue-tracker/internal/http/middleware"
	"issue-tracker/internal/models"
	repo "issue-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var actor = &models.User{ID: 1, Username: "alice", Email: "alice@example.com", TeamID: 7}

func authedRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(mw.ContextWithUser(req.Context(), actor))
}

func TestTeamHandler_Invite_Success(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := teamh.NewTeamHandler(handlers.NewLogger(), mockService)

	reqBody := teamh.InviteRequest{Email: "bob@example.com"}
	body, _ := json.Marshal(reqBody)
	req := authedRequest(http.MethodPost, "/invite", body)
	w := httptest.NewRecorder()

	expected := &api.TeamMemberSchema{ID: 3, Email: "bob@example.com", InvitedBy: 1, Status: models.InviteStatusInvited}
	mockService.On("Invite", mock.Anything, actor, "bob@example.com").Return(expected, nil)

	h.Invite(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.TeamMemberSchema
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, *expected, resp)
}

func TestTeamHandler_Invite_Duplicate(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := teamh.NewTeamHandler(handlers.NewLogger(), mockService)

	reqBody := teamh.InviteRequest{Email: "bob@example.com"}
	body, _ := json.Marshal(reqBody)
	req := authedRequest(http.MethodPost, "/invite", body)
	w := httptest.NewRecorder()

	mockService.On("Invite", mock.Anything, actor, "bob@example.com").
		Return(nil, repo.ErrInviteExists)

	h.Invite(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeInviteExists, resp.Error.Code)
}

func TestTeamHandler_Invite_ValidationError(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := teamh.NewTeamHandler(handlers.NewLogger(), mockService)

	reqBody := teamh.InviteRequest{Email: "not-an-email"}
	body, _ := json.Marshal(reqBody)
	req := authedRequest(http.MethodPost, "/invite", body)
	w := httptest.NewRecorder()

	h.Invite(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestTeamHandler_Invite_BadJSON(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := teamh.NewTeamHandler(handlers.NewLogger(), mockService)

	req := authedRequest(http.MethodPost, "/invite", []byte("{invalid json"))
	w := httptest.NewRecorder()

	h.Invite(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestTeamHandler_Invite_NoActor(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := teamh.NewTeamHandler(handlers.NewLogger(), mockService)

	reqBody := teamh.InviteRequest{Email: "bob@example.com"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/invite", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Invite(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeMissingToken, resp.Error.Code)
}

func TestTeamHandler_List_Success(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := teamh.NewTeamHandler(handlers.NewLogger(), mockService)

	req := authedRequest(http.MethodGet, "/team", nil)
	w := httptest.NewRecorder()

	expected := []api.TeamMemberSchema{
		{ID: 3, Email: "bob@example.com", InvitedBy: 1, Status: models.InviteStatusInvited},
		{ID: 4, Email: "carol@example.com", InvitedBy: 1, Status: models.InviteStatusJoined},
	}
	mockService.On("ListInvites", mock.Anything, actor).Return(expected, nil)

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []api.TeamMemberSchema
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, expected, resp)
}

func TestTeamHandler_List_InternalError(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := teamh.NewTeamHandler(handlers.NewLogger(), mockService)

	req := authedRequest(http.MethodGet, "/team", nil)
	w := httptest.NewRecorder()

	mockService.On("ListInvites", mock.Anything, actor).Return(nil, errors.New("db error"))

	h.List(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}
