package stats

import (
	"context"
	"log/slog"
	"net/http"

	"issue-tracker/internal/http/api"
	mw "issue-tracker/internal/http/middleware"
	"issue-tracker/internal/lib/sl"
	"issue-tracker/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type statsService interface {
	GetStatistics(ctx context.Context, actor *models.User) (*api.StatsResponse, error)
}

type StatsHandler struct {
	log     *slog.Logger
	service statsService
}

func NewStatsHandler(log *slog.Logger, s statsService) *StatsHandler {
	return &StatsHandler{
		log:     log,
		service: s,
	}
}

func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.stats.Get"
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

	resp, err := h.service.GetStatistics(ctx, actor)
	if err != nil {
		log.Error("error while retrieving statistics", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
