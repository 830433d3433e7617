package models

import (
	"time"
)

type User struct {
	ID           int64      `db:"id"`
	Username     string     `db:"username"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	TeamID       int64      `db:"team_id"`
	CreatedAt    *time.Time `db:"created_at"`
}

// HasTeam reports whether the user was ever assigned to a team.
// TeamID 0 is the "no team" sentinel used when the column is NULL.
func (u *User) HasTeam() bool {
	return u.TeamID != 0
}
