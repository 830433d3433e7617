package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"issue-tracker/internal/http/api"
	"issue-tracker/internal/lib/sl"
	repo "issue-tracker/internal/repository"
	"issue-tracker/internal/service"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type authService interface {
	Register(ctx context.Context, username, email, password string) (*api.UserSchema, error)
	Login(ctx context.Context, username, password string) (*api.LoginResponse, error)
}

type AuthHandler struct {
	log     *slog.Logger
	service authService
}

func NewAuthHandler(log *slog.Logger, s authService) *AuthHandler {
	return &AuthHandler{
		log:     log,
		service: s,
	}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Register"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input RegisterRequest
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

	resp, err := h.service.Register(ctx, input.Username, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrUsernameExists):
			log.Info("username taken", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeUsernameExists, err.Error()))

		case errors.Is(err, repo.ErrEmailExists):
			log.Info("email taken", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeEmailExists, err.Error()))

		case errors.Is(err, service.ErrInviterHasNoTeam):
			log.Info("inviter has no team", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeInviterHasNoTeam, err.Error()))

		default:
			log.Error("error while registering user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	log.Info("user registered", slog.Int64("user_id", resp.ID))
	render.JSON(w, r, resp)
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input LoginRequest
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

	resp, err := h.service.Login(ctx, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Info("invalid credentials")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, api.Error(api.ErrCodeInvalidCreds, err.Error()))
			return
		}
		log.Error("error while logging in", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("user logged in", slog.Int64("user_id", resp.User.ID))
	render.JSON(w, r, resp)
}
