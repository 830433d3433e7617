package api

type UserSchema struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	TeamID   int64  `json:"team_id"`
}

type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        UserSchema `json:"user"`
}

type TeamMemberSchema struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	InvitedBy int64  `json:"invited_by"`
	Email     string `json:"email"`
	Status    string `json:"status"`
}

type IssueSchema struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Tags        string `json:"tags"`
	CreatedBy   int64  `json:"created_by"`
	AssignedTo  *int64 `json:"assigned_to"`
	TeamID      int64  `json:"team_id"`
}

type DeleteResponse struct {
	OK bool `json:"ok"`
}

type StatsResponse struct {
	Issues  IssueStats    `json:"issues"`
	Members []MemberStats `json:"members"`
}

type IssueStats struct {
	IssueCount int `json:"issue_count"`
	OpenIssues int `json:"open_issue_count"`
	DoneIssues int `json:"done_issue_count"`
	InProgress int `json:"in_progress_issue_count"`
}

type MemberStats struct {
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	IssueCount int    `json:"issue_count"`
}
