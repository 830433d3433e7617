package issue

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"issue-tracker/internal/http/api"
	mw "issue-tracker/internal/http/middleware"
	"issue-tracker/internal/lib/sl"
	"issue-tracker/internal/models"
	repo "issue-tracker/internal/repository"
	issuesvc "issue-tracker/internal/service/issue"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type issueService interface {
	List(ctx context.Context, actor *models.User) ([]api.IssueSchema, error)
	Create(ctx context.Context, actor *models.User, input issuesvc.IssueInput) (*api.IssueSchema, error)
	Get(ctx context.Context, actor *models.User, issueID int64) (*api.IssueSchema, error)
	Update(ctx context.Context, actor *models.User, issueID int64, input issuesvc.IssueInput) (*api.IssueSchema, error)
	Delete(ctx context.Context, actor *models.User, issueID int64) error
}

type IssueHandler struct {
	log     *slog.Logger
	service issueService
}

func NewIssueHandler(log *slog.Logger, s issueService) *IssueHandler {
	return &IssueHandler{
		log:     log,
		service: s,
	}
}

// IssueRequest is the body for both create and update. Ownership and team
// fields are not accepted from the client.
type IssueRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"required"`
	Priority    string `json:"priority"    validate:"required"`
	Tags        string `json:"tags"`
	AssignedTo  *int64 `json:"assigned_to"`
}

func (req IssueRequest) toInput() issuesvc.IssueInput {
	return issuesvc.IssueInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Tags:        req.Tags,
		AssignedTo:  req.AssignedTo,
	}
}

func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.issue.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	actor, ok := mw.UserFromContext(ctx)
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, api.Error(api.ErrCodeMissingToken, "missing token"))
		return
	}

	resp, err := h.service.List(ctx, actor)
	if err != nil {
		log.Error("error while listing issues", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.issue.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	actor, ok := mw.UserFromContext(ctx)
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, api.Error(api.ErrCodeMissingToken, "missing token"))
		return
	}

	var input IssueRequest
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	resp, err := h.service.Create(ctx, actor, input.toInput())
	if err != nil {
		log.Error("error while creating issue", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("issue created", slog.Int64("issue_id", resp.ID))
	render.JSON(w, r, resp)
}

func (h *IssueHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.issue.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	actor, ok := mw.UserFromContext(ctx)
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, api.Error(api.ErrCodeMissingToken, "missing token"))
		return
	}

	issueID, err := issueIDParam(r)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid issue id"))
		return
	}

	resp, err := h.service.Get(ctx, actor, issueID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("issue not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving issue", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *IssueHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.issue.Update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	actor, ok := mw.UserFromContext(ctx)
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, api.Error(api.ErrCodeMissingToken, "missing token"))
		return
	}

	issueID, err := issueIDParam(r)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid issue id"))
		return
	}

	var input IssueRequest
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	resp, err := h.service.Update(ctx, actor, issueID, input.toInput())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("issue not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while updating issue", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("issue updated", slog.Int64("issue_id", resp.ID))
	render.JSON(w, r, resp)
}

func (h *IssueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.issue.Delete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	actor, ok := mw.UserFromContext(ctx)
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, api.Error(api.ErrCodeMissingToken, "missing token"))
		return
	}

	issueID, err := issueIDParam(r)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid issue id"))
		return
	}

	if err := h.service.Delete(ctx, actor, issueID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("issue not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while deleting issue", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("issue deleted", slog.Int64("issue_id", issueID))
	render.JSON(w, r, api.DeleteResponse{OK: true})
}

func issueIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
