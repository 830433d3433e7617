package stats

import (
	"context"

	"issue-tracker/internal/http/api"
	"issue-tracker/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=StatsProvider
type StatsProvider interface {
	GetMemberStats(ctx context.Context, teamID int64) ([]*models.MemberStatistics, error)
	GetIssueStats(ctx context.Context, teamID int64) (*models.IssueStatistics, error)
}

type StatsService struct {
	statsProvider StatsProvider
}

func NewStatsService(statsProvider StatsProvider) *StatsService {
	return &StatsService{
		statsProvider: statsProvider,
	}
}

// GetStatistics reports issue counters for the actor's team only.
func (s *StatsService) GetStatistics(ctx context.Context, actor *models.User) (*api.StatsResponse, error) {
	resp := &api.StatsResponse{
		Members: []api.MemberStats{},
	}

	issueStats, err := s.statsProvider.GetIssueStats(ctx, actor.TeamID)
	if err != nil {
		return nil, err
	}

	memberStats, err := s.statsProvider.GetMemberStats(ctx, actor.TeamID)
	if err != nil {
		return nil, err
	}

	resp.Issues = api.IssueStats(*issueStats)
	for _, m := range memberStats {
		resp.Members = append(resp.Members, api.MemberStats(*m))
	}

	return resp, nil
}
