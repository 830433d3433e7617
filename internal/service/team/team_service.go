package team

import (
	"context"
	"errors"

	"issue-tracker/internal/http/api"
	"issue-tracker/internal/models"
	repo "issue-tracker/internal/repository"
	"issue-tracker/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=MemberProvider
type MemberProvider interface {
	Create(ctx context.Context, member *models.TeamMember) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.TeamMember, error)
	ListByInviter(ctx context.Context, inviterID int64) ([]*models.TeamMember, error)
}

type TeamService struct {
	trm            service.TransactionManager
	memberProvider MemberProvider
}

func NewTeamService(trm service.TransactionManager, memberProvider MemberProvider) *TeamService {
	return &TeamService{
		trm:            trm,
		memberProvider: memberProvider,
	}
}

// Invite records a pending invitation from the actor to the email. A row
// for the email in any status blocks a new invite; there is no revoke or
// re-invite.
func (s *TeamService) Invite(ctx context.Context, actor *models.User, email string) (*api.TeamMemberSchema, error) {
	resp := &api.TeamMemberSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		_, err := s.memberProvider.GetByEmail(ctx, email)
		if err == nil {
			return repo.ErrInviteExists
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		member := &models.TeamMember{
			UserID:    0,
			InvitedBy: actor.ID,
			Email:     email,
			Status:    models.InviteStatusInvited,
		}

		memberID, err := s.memberProvider.Create(ctx, member)
		if err != nil {
			return err
		}

		resp.ID = memberID
		resp.UserID = member.UserID
		resp.InvitedBy = member.InvitedBy
		resp.Email = member.Email
		resp.Status = member.Status

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// ListInvites returns all invites issued by the actor, pending or joined.
func (s *TeamService) ListInvites(ctx context.Context, actor *models.User) ([]api.TeamMemberSchema, error) {
	members, err := s.memberProvider.ListByInviter(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	resp := make([]api.TeamMemberSchema, 0, len(members))
	for _, m := range members {
		resp = append(resp, api.TeamMemberSchema{
			ID:        m.ID,
			UserID:    m.UserID,
			InvitedBy: m.InvitedBy,
			Email:     m.Email,
			Status:    m.Status,
		})
	}

	return resp, nil
}
