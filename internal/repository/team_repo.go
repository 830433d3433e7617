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

type TeamRepository interface {
	Create(ctx context.Context, teamName string) (int64, error)
	GetById(ctx context.Context, teamID int64) (*models.Team, error)
}

type TeamRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewTeamRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *TeamRepo {
	return &TeamRepo{
		db:     db,
		getter: c,
	}
}

func (r *TeamRepo) Create(ctx context.Context, teamName string) (int64, error) {
	const op = "team_repo.Create"

	query := `
		INSERT INTO teams (name, created_at)
		VALUES ($1, now())
		RETURNING id;
	`

	var teamID int64
	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, query, teamName).Scan(&teamID)
	if err != nil {
		if uniqErr := asUniqueViolation(err); uniqErr != nil {
			return 0, uniqErr
		}
		return 0, lib.Err(op, err)
	}

	return teamID, nil
}

func (r *TeamRepo) GetById(ctx context.Context, teamID int64) (*models.Team, error) {
	const op = "team_repo.GetById"

	query := `
		SELECT id, name, created_at
		FROM teams
		WHERE id = $1;
	`

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}
