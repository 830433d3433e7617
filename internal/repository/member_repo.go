package repo

import (
	"context"
	"database/sql"
	"errors"

	"issue-tracker/internal/lib"
	"issue-tracker/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type MemberRepository interface {
	Create(ctx context.Context, member *models.TeamMember) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.TeamMember, error)
	GetInvitedByEmail(ctx context.Context, email string) (*models.TeamMember, error)
	MarkJoined(ctx context.Context, memberID, userID int64) error
	ListByInviter(ctx context.Context, inviterID int64) ([]*models.TeamMember, error)
}

type MemberRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewMemberRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *MemberRepo {
	return &MemberRepo{
		db:     db,
		getter: c,
	}
}

func (r *MemberRepo) Create(ctx context.Context, member *models.TeamMember) (int64, error) {
	const op = "member_repo.Create"

	query := `
		INSERT INTO team_members (user_id, invited_by, email, status, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id;
	`

	var memberID int64
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, member.UserID, member.InvitedBy, member.Email, member.Status).Scan(&memberID)
	if err != nil {
		if uniqErr := asUniqueViolation(err); uniqErr != nil {
			return 0, uniqErr
		}
		return 0, lib.Err(op, err)
	}

	return memberID, nil
}

func (r *MemberRepo) GetByEmail(ctx context.Context, email string) (*models.TeamMember, error) {
	const op = "member_repo.GetByEmail"

	query := `
		SELECT id, user_id, invited_by, email, status, created_at
		FROM team_members
		WHERE email = $1;
	`

	var member models.TeamMember
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &member, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &member, nil
}

func (r *MemberRepo) GetInvitedByEmail(ctx context.Context, email string) (*models.TeamMember, error) {
	const op = "member_repo.GetInvitedByEmail"

	query := `
		SELECT id, user_id, invited_by, email, status, created_at
		FROM team_members
		WHERE email = $1 AND status = $2;
	`

	var member models.TeamMember
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &member, query, email, models.InviteStatusInvited)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &member, nil
}

func (r *MemberRepo) MarkJoined(ctx context.Context, memberID, userID int64) error {
	const op = "member_repo.MarkJoined"

	query := `
		UPDATE team_members
		SET user_id = $1, status = $2
		WHERE id = $3;
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, userID, models.InviteStatusJoined, memberID)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *MemberRepo) ListByInviter(ctx context.Context, inviterID int64) ([]*models.TeamMember, error) {
	const op = "member_repo.ListByInviter"

	query := `
		SELECT id, user_id, invited_by, email, status, created_at
		FROM team_members
		WHERE invited_by = $1;
	`

	var members []*models.TeamMember
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &members, query, inviterID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.TeamMember{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return members, nil
}
