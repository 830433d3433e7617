package issue

import (
	"context"

	"issue-tracker/internal/http/api"
	"issue-tracker/internal/models"
	"issue-tracker/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=IssueProvider
type IssueProvider interface {
	Create(ctx context.Context, issue *models.Issue) (int64, error)
	GetByIdAndCreator(ctx context.Context, issueID, creatorID int64) (*models.Issue, error)
	GetByIdAndTeam(ctx context.Context, issueID, teamID int64) (*models.Issue, error)
	ListByTeam(ctx context.Context, teamID int64) ([]*models.Issue, error)
	Update(ctx context.Context, issue *models.Issue) error
	DeleteByIdAndCreator(ctx context.Context, issueID, creatorID int64) error
}

// IssueInput carries the client-settable issue fields. Ownership and team
// are always stamped from the actor, never taken from the payload.
type IssueInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	Tags        string
	AssignedTo  *int64
}

// IssueService applies the scoping matrix: list and update are team-wide,
// read and delete are restricted to the creator.
type IssueService struct {
	trm           service.TransactionManager
	issueProvider IssueProvider
}

func NewIssueService(trm service.TransactionManager, issueProvider IssueProvider) *IssueService {
	return &IssueService{
		trm:           trm,
		issueProvider: issueProvider,
	}
}

func (s *IssueService) List(ctx context.Context, actor *models.User) ([]api.IssueSchema, error) {
	issues, err := s.issueProvider.ListByTeam(ctx, actor.TeamID)
	if err != nil {
		return nil, err
	}

	resp := make([]api.IssueSchema, 0, len(issues))
	for _, i := range issues {
		resp = append(resp, toSchema(i))
	}

	return resp, nil
}

func (s *IssueService) Create(ctx context.Context, actor *models.User, input IssueInput) (*api.IssueSchema, error) {
	issue := &models.Issue{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		Tags:        input.Tags,
		AssignedTo:  input.AssignedTo,
		CreatedBy:   actor.ID,
		TeamID:      actor.TeamID,
	}

	issueID, err := s.issueProvider.Create(ctx, issue)
	if err != nil {
		return nil, err
	}

	issue.ID = issueID
	resp := toSchema(issue)
	return &resp, nil
}

func (s *IssueService) Get(ctx context.Context, actor *models.User, issueID int64) (*api.IssueSchema, error) {
	issue, err := s.issueProvider.GetByIdAndCreator(ctx, issueID, actor.ID)
	if err != nil {
		return nil, err
	}

	resp := toSchema(issue)
	return &resp, nil
}

func (s *IssueService) Update(ctx context.Context, actor *models.User, issueID int64, input IssueInput) (*api.IssueSchema, error) {
	resp := &api.IssueSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		issue, err := s.issueProvider.GetByIdAndTeam(ctx, issueID, actor.TeamID)
		if err != nil {
			return err
		}

		issue.Title = input.Title
		issue.Description = input.Description
		issue.Status = input.Status
		issue.Priority = input.Priority
		issue.Tags = input.Tags
		issue.AssignedTo = input.AssignedTo

		if err := s.issueProvider.Update(ctx, issue); err != nil {
			return err
		}

		*resp = toSchema(issue)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *IssueService) Delete(ctx context.Context, actor *models.User, issueID int64) error {
	return s.issueProvider.DeleteByIdAndCreator(ctx, issueID, actor.ID)
}

func toSchema(i *models.Issue) api.IssueSchema {
	return api.IssueSchema{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Status:      i.Status,
		Priority:    i.Priority,
		Tags:        i.Tags,
		CreatedBy:   i.CreatedBy,
		AssignedTo:  i.AssignedTo,
		TeamID:      i.TeamID,
	}
}
