package models

import "time"

const (
	InviteStatusInvited = "INVITED"
	InviteStatusJoined  = "JOINED"
)

// TeamMember is an invite record. UserID stays 0 while the invite is
// pending and is set once a registration with the matching email joins.
// The team is not stored here: it is derived from the inviter's user row.
type TeamMember struct {
	ID        int64      `db:"id"`
	UserID    int64      `db:"user_id"`
	InvitedBy int64      `db:"invited_by"`
	Email     string     `db:"email"`
	Status    string     `db:"status"`
	CreatedAt *time.Time `db:"created_at"`
}
