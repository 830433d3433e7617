package models

import "time"

type Issue struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Status      string     `db:"status"`
	Priority    string     `db:"priority"`
	Tags        string     `db:"tags"`
	CreatedBy   int64      `db:"created_by"`
	AssignedTo  *int64     `db:"assigned_to"`
	TeamID      int64      `db:"team_id"`
	CreatedAt   *time.Time `db:"created_at"`
}
