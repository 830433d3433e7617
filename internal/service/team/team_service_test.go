package team_test

import (
	"context"
	"errors"
	"testing"

	"issue-tracker/internal/models"
	repo "issue-tracker/internal/repository"
	"issue-tracker/internal/service/mocks"
	"issue-tracker/internal/service/team"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTeamService_Invite_Success(t *testing.T) {
	ctx := context.Background()

	members := mocks.NewMemberProvider(t)

	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	actor := &models.User{ID: 1, Username: "alice", TeamID: 7}

	members.On("GetByEmail", ctx, "bob@example.com").
		Return((*models.TeamMember)(nil), repo.ErrNotFound)

	members.On("Create", ctx, mock.MatchedBy(func(m *models.TeamMember) bool {
		return m.UserID == 0 && m.InvitedBy == 1 &&
			m.Email == "bob@example.com" && m.Status == models.InviteStatusInvited
	})).Return(int64(3), nil)

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).Once()

	svc := team.NewTeamService(trm, members)

	resp, err := svc.Invite(ctx, actor, "bob@example.com")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, int64(0), resp.UserID)
	assert.Equal(t, int64(1), resp.InvitedBy)
	assert.Equal(t, models.InviteStatusInvited, resp.Status)
}

// A row in any status blocks a new invite, including an already joined one.
func TestTeamService_Invite_Duplicate(t *testing.T) {
	ctx := context.Background()

	members := mocks.NewMemberProvider(t)

	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	actor := &models.User{ID: 1, TeamID: 7}

	existing := &models.TeamMember{ID: 3, UserID: 2, InvitedBy: 1, Email: "bob@example.com", Status: models.InviteStatusJoined}
	members.On("GetByEmail", ctx, "bob@example.com").Return(existing, nil)

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), repo.ErrInviteExists)
		}).
		Return(repo.ErrInviteExists).Once()

	svc := team.NewTeamService(trm, members)

	resp, err := svc.Invite(ctx, actor, "bob@example.com")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrInviteExists)
	members.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTeamService_Invite_CreateError(t *testing.T) {
	ctx := context.Background()

	members := mocks.NewMemberProvider(t)

	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	actor := &models.User{ID: 1, TeamID: 7}
	createErr := errors.New("insert failed")

	members.On("GetByEmail", ctx, "bob@example.com").
		Return((*models.TeamMember)(nil), repo.ErrNotFound)
	members.On("Create", ctx, mock.Anything).Return(int64(0), createErr)

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), createErr)
		}).
		Return(createErr).Once()

	svc := team.NewTeamService(trm, members)

	resp, err := svc.Invite(ctx, actor, "bob@example.com")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, createErr)
}

func TestTeamService_ListInvites_Success(t *testing.T) {
	ctx := context.Background()

	members := mocks.NewMemberProvider(t)

	actor := &models.User{ID: 1, TeamID: 7}

	rows := []*models.TeamMember{
		{ID: 3, UserID: 0, InvitedBy: 1, Email: "bob@example.com", Status: models.InviteStatusInvited},
		{ID: 4, UserID: 2, InvitedBy: 1, Email: "carol@example.com", Status: models.InviteStatusJoined},
	}
	members.On("ListByInviter", ctx, int64(1)).Return(rows, nil)

	svc := team.NewTeamService(nil, members)

	resp, err := svc.ListInvites(ctx, actor)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "bob@example.com", resp[0].Email)
	assert.Equal(t, models.InviteStatusJoined, resp[1].Status)
}

func TestTeamService_ListInvites_Empty(t *testing.T) {
	ctx := context.Background()

	members := mocks.NewMemberProvider(t)

	actor := &models.User{ID: 1, TeamID: 7}
	members.On("ListByInviter", ctx, int64(1)).Return([]*models.TeamMember{}, nil)

	svc := team.NewTeamService(nil, members)

	resp, err := svc.ListInvites(ctx, actor)

	assert.NoError(t, err)
	assert.Empty(t, resp)
	assert.NotNil(t, resp)
}

func TestTeamService_ListInvites_Error(t *testing.T) {
	ctx := context.Background()

	members := mocks.NewMemberProvider(t)

	actor := &models.User{ID: 1, TeamID: 7}
	listErr := errors.New("select failed")
	members.On("ListByInviter", ctx, int64(1)).Return(([]*models.TeamMember)(nil), listErr)

	svc := team.NewTeamService(nil, members)

	resp, err := svc.ListInvites(ctx, actor)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, listErr)
}
