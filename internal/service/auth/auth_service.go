package auth

import (
	"context"
	"errors"
	"fmt"

	"issue-tracker/internal/http/api"
	"issue-tracker/internal/models"
	repo "issue-tracker/internal/repository"
	"issue-tracker/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserProvider
type UserProvider interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetById(ctx context.Context, userID int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamCreator
type TeamCreator interface {
	Create(ctx context.Context, teamName string) (int64, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=InviteResolver
type InviteResolver interface {
	GetInvitedByEmail(ctx context.Context, email string) (*models.TeamMember, error)
	MarkJoined(ctx context.Context, memberID, userID int64) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PasswordHasher
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TokenIssuer
type TokenIssuer interface {
	Issue(username string, userID int64) (string, error)
}

type AuthService struct {
	trm            service.TransactionManager
	userProvider   UserProvider
	teamCreator    TeamCreator
	inviteResolver InviteResolver
	hasher         PasswordHasher
	tokens         TokenIssuer
}

func NewAuthService(
	trm service.TransactionManager,
	userProvider UserProvider,
	teamCreator TeamCreator,
	inviteResolver InviteResolver,
	hasher PasswordHasher,
	tokens TokenIssuer,
) *AuthService {
	return &AuthService{
		trm:            trm,
		userProvider:   userProvider,
		teamCreator:    teamCreator,
		inviteResolver: inviteResolver,
		hasher:         hasher,
		tokens:         tokens,
	}
}

// Register creates a user and resolves its team. An INVITED record for the
// email adopts the inviter's team and becomes JOINED; otherwise a fresh
// team named after the user is created. All writes happen in one
// transaction, so a failing step rolls everything back.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*api.UserSchema, error) {
	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	resp := &api.UserSchema{}

	err = s.trm.Do(ctx, func(ctx context.Context) error {
		if err := s.checkUnique(ctx, username, email); err != nil {
			return err
		}

		invite, err := s.inviteResolver.GetInvitedByEmail(ctx, email)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		var teamID int64
		if invite != nil {
			teamID, err = s.resolveInviterTeam(ctx, invite)
		} else {
			teamID, err = s.teamCreator.Create(ctx, fmt.Sprintf("%s's Team", username))
		}
		if err != nil {
			return err
		}

		user := &models.User{
			Username:     username,
			Email:        email,
			PasswordHash: passwordHash,
			TeamID:       teamID,
		}

		userID, err := s.userProvider.Create(ctx, user)
		if err != nil {
			return err
		}

		if invite != nil {
			if err := s.inviteResolver.MarkJoined(ctx, invite.ID, userID); err != nil {
				return err
			}
		}

		resp.ID = userID
		resp.Username = username
		resp.Email = email
		resp.TeamID = teamID

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Login verifies the credentials and issues a session token. An unknown
// username and a wrong password yield the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*api.LoginResponse, error) {
	user, err := s.userProvider.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, service.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, service.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.ID)
	if err != nil {
		return nil, err
	}

	return &api.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: api.UserSchema{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			TeamID:   user.TeamID,
		},
	}, nil
}

func (s *AuthService) checkUnique(ctx context.Context, username, email string) error {
	_, err := s.userProvider.GetByUsername(ctx, username)
	if err == nil {
		return repo.ErrUsernameExists
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	_, err = s.userProvider.GetByEmail(ctx, email)
	if err == nil {
		return repo.ErrEmailExists
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	return nil
}

// resolveInviterTeam derives the invite's team by following invited_by to
// the inviter's user row; the invite itself does not store a team id.
func (s *AuthService) resolveInviterTeam(ctx context.Context, invite *models.TeamMember) (int64, error) {
	inviter, err := s.userProvider.GetById(ctx, invite.InvitedBy)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, service.ErrInviterHasNoTeam
		}
		return 0, err
	}

	if !inviter.HasTeam() {
		return 0, service.ErrInviterHasNoTeam
	}

	return inviter.TeamID, nil
}
