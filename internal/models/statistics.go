package models

type MemberStatistics struct {
	UserID     int64  `db:"user_id"`
	Username   string `db:"username"`
	IssueCount int    `db:"issue_count"`
}

type IssueStatistics struct {
	IssueCount int `db:"issue_count"`
	OpenIssues int `db:"open_issue_count"`
	DoneIssues int `db:"done_issue_count"`
	InProgress int `db:"in_progress_issue_count"`
}
