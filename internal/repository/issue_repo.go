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

type IssueRepository interface {
	Create(ctx context.Context, issue *models.Issue) (int64, error)
	GetByIdAndCreator(ctx context.Context, issueID, creatorID int64) (*models.Issue, error)
	GetByIdAndTeam(ctx context.Context, issueID, teamID int64) (*models.Issue, error)
	ListByTeam(ctx context.Context, teamID int64) ([]*models.Issue, error)
	Update(ctx context.Context, issue *models.Issue) error
	DeleteByIdAndCreator(ctx context.Context, issueID, creatorID int64) error
}

type IssueRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewIssueRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *IssueRepo {
	return &IssueRepo{
		db:     db,
		getter: c,
	}
}

func (r *IssueRepo) Create(ctx context.Context, issue *models.Issue) (int64, error) {
	const op = "issue_repo.Create"

	query := `
		INSERT INTO issues (title, description, status, priority, tags, created_by, assigned_to, team_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING id;
	`

	var issueID int64
	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(
		ctx,
		query,
		issue.Title,
		issue.Description,
		issue.Status,
		issue.Priority,
		issue.Tags,
		issue.CreatedBy,
		issue.AssignedTo,
		issue.TeamID,
	).Scan(&issueID)
	if err != nil {
		return 0, lib.Err(op, err)
	}

	return issueID, nil
}

func (r *IssueRepo) GetByIdAndCreator(ctx context.Context, issueID, creatorID int64) (*models.Issue, error) {
	const op = "issue_repo.GetByIdAndCreator"

	query := `
		SELECT id, title, description, status, priority, tags, created_by, assigned_to, team_id, created_at
		FROM issues
		WHERE id = $1 AND created_by = $2;
	`

	var issue models.Issue
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &issue, query, issueID, creatorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &issue, nil
}

func (r *IssueRepo) GetByIdAndTeam(ctx context.Context, issueID, teamID int64) (*models.Issue, error) {
	const op = "issue_repo.GetByIdAndTeam"

	query := `
		SELECT id, title, description, status, priority, tags, created_by, assigned_to, team_id, created_at
		FROM issues
		WHERE id = $1 AND team_id = $2;
	`

	var issue models.Issue
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &issue, query, issueID, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &issue, nil
}

func (r *IssueRepo) ListByTeam(ctx context.Context, teamID int64) ([]*models.Issue, error) {
	const op = "issue_repo.ListByTeam"

	query := `
		SELECT id, title, description, status, priority, tags, created_by, assigned_to, team_id, created_at
		FROM issues
		WHERE team_id = $1
		ORDER BY created_at DESC;
	`

	var issues []*models.Issue
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &issues, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Issue{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return issues, nil
}

func (r *IssueRepo) Update(ctx context.Context, issue *models.Issue) error {
	const op = "issue_repo.Update"

	query := `
		UPDATE issues
		SET title = $1, description = $2, status = $3, priority = $4, tags = $5, assigned_to = $6
		WHERE id = $7;
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		issue.Title,
		issue.Description,
		issue.Status,
		issue.Priority,
		issue.Tags,
		issue.AssignedTo,
		issue.ID,
	)
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

func (r *IssueRepo) DeleteByIdAndCreator(ctx context.Context, issueID, creatorID int64) error {
	const op = "issue_repo.DeleteByIdAndCreator"

	query := `DELETE FROM issues WHERE id = $1 AND created_by = $2;`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, issueID, creatorID)
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
