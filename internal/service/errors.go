package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so the caller can not tell the cases apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInviterHasNoTeam = errors.New("inviter has no team")
)
