package repo

import (
	"context"
	"database/sql"
	"errors"

	"issue-tracker/internal/lib"
	"issue-tracker/internal/models"

	"github.com/jmoiron/sqlx"
)

type StatisticsRepo struct {
	db *sqlx.DB
}

func NewStatisticsRepo(db *sqlx.DB) *StatisticsRepo {
	return &StatisticsRepo{
		db: db,
	}
}

func (r *StatisticsRepo) GetMemberStats(ctx context.Context, teamID int64) ([]*models.MemberStatistics, error) {
	const op = "stats_repo.GetMemberStats"

	query := `
		SELECT u.id AS user_id, u.username, COUNT(i.id) AS issue_count
		FROM users u
		LEFT JOIN issues i ON u.id = i.created_by
		WHERE u.team_id = $1
		GROUP BY u.id, u.username
		ORDER BY issue_count DESC, u.username ASC;
	`

	var stats []*models.MemberStatistics
	err := r.db.SelectContext(ctx, &stats, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.MemberStatistics{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return stats, nil
}

func (r *StatisticsRepo) GetIssueStats(ctx context.Context, teamID int64) (*models.IssueStatistics, error) {
	const op = "stats_repo.GetIssueStats"

	query := `
		SELECT
		COUNT(*) AS issue_count,
		COUNT(CASE WHEN status = 'OPEN' THEN 1 END) AS open_issue_count,
		COUNT(CASE WHEN status = 'DONE' THEN 1 END) AS done_issue_count,
		COUNT(CASE WHEN status = 'IN_PROGRESS' THEN 1 END) AS in_progress_issue_count
		FROM issues
		WHERE team_id = $1;
	`

	var res models.IssueStatistics
	err := r.db.GetContext(ctx, &res, query, teamID)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	return &res, nil
}
