package team

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"issue-tracker/internal/http/api"
	mw "issue-tracker/internal/http/middleware"
	"issue-tracker/internal/lib/sl"
	"issue-tracker/internal/models"
	repo "issue-tracker/internal/repository"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type teamService interface {
	Invite(ctx context.Context, actor *models.User, email string) (*api.TeamMemberSchema, error)
	ListInvites(ctx context.Context, actor *models.User) ([]api.TeamMemberSchema, error)
}

type TeamHandler struct {
	log     *slog.Logger
	service teamService
}

func NewTeamHandler(log *slog.Logger, s teamService) *TeamHandler {
	return &TeamHandler{
		log:     log,
		service: s,
	}
}

type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *TeamHandler) Invite(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Invite"
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

	var input InviteRequest
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

	resp, err := h.service.Invite(ctx, actor, input.Email)
	if err != nil {
		if errors.Is(err, repo.ErrInviteExists) {
			log.Info("invite exists", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeInviteExists, err.Error()))
			return
		}
		log.Error("error while creating invite", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("invite created", slog.String("email", input.Email))
	render.JSON(w, r, resp)
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.List"
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

	resp, err := h.service.ListInvites(ctx, actor)
	if err != nil {
		log.Error("error while listing invites", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
