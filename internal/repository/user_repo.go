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

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetById(ctx context.Context, userID int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type UserRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUserRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UserRepo {
	return &UserRepo{
		db:     db,
		getter: c,
	}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	const op = "user_repo.Create"

	query := `
		INSERT INTO users (username, email, password_hash, team_id, created_at)
		VALUES ($1, $2, $3, NULLIF($4, 0), NOW())
		RETURNING id;
	`

	var userID int64
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, user.Username, user.Email, user.PasswordHash, user.TeamID).Scan(&userID)
	if err != nil {
		if uniqErr := asUniqueViolation(err); uniqErr != nil {
			return 0, uniqErr
		}
		return 0, lib.Err(op, err)
	}

	return userID, nil
}

func (r *UserRepo) GetById(ctx context.Context, userID int64) (*models.User, error) {
	const op = "user_repo.GetById"

	query := `
		SELECT id, username, email, password_hash, COALESCE(team_id, 0) AS team_id, created_at
		FROM users
		WHERE id = $1;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "user_repo.GetByUsername"

	query := `
		SELECT id, username, email, password_hash, COALESCE(team_id, 0) AS team_id, created_at
		FROM users
		WHERE username = $1;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "user_repo.GetByEmail"

	query := `
		SELECT id, username, email, password_hash, COALESCE(team_id, 0) AS team_id, created_at
		FROM users
		WHERE email = $1;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}
