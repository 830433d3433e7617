package repo

import (
	"errors"

	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

var (
	ErrNotFound       = errors.New("resource not found")
	ErrUsernameExists = errors.New("username already registered")
	ErrEmailExists    = errors.New("email already registered")
	ErrInviteExists   = errors.New("user already invited")
	ErrTeamExists     = errors.New("team with this name already exists")
)

// asUniqueViolation maps a Postgres unique-constraint violation to the
// matching sentinel by constraint name. The store-level index is the real
// uniqueness guard; application-level existence checks only give nicer
// fast-path errors.
func asUniqueViolation(err error) error {
	pgErr := &pq.Error{}
	if !errors.As(err, &pgErr) || string(pgErr.Code) != uniqueViolationCode {
		return nil
	}

	switch pgErr.Constraint {
	case "users_username_key":
		return ErrUsernameExists
	case "users_email_key":
		return ErrEmailExists
	case "team_members_email_key":
		return ErrInviteExists
	case "teams_name_key":
		return ErrTeamExists
	}

	return nil
}
