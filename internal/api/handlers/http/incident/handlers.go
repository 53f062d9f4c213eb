package incident

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Noctua76/noctua-panic-backend/internal/domain"
	"github.com/Noctua76/noctua-panic-backend/internal/render"
	"github.com/Noctua76/noctua-panic-backend/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type IncidentLogger interface {
	Log(ctx context.Context, req domain.IncidentLogRequest) (string, error)
}

type Handler struct {
	logger    *slog.Logger
	render    *render.Renderer
	Incidents IncidentLogger
}

func NewHandler(logger *slog.Logger, incidents IncidentLogger) *Handler {
	return &Handler{
		logger:    logger,
		render:    render.NewRenderer(logger),
		Incidents: incidents,
	}
}

func (h *Handler) IncidentLog(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.IncidentLogRequest
	if err := render.Bind(r, &req); err != nil {
		l.Warn("invalid incident log", slog.String("error", err.Error()))
		h.render.Invalid(w, err)
		return
	}

	summary, err := h.Incidents.Log(r.Context(), req)
	if err != nil {
		l.Error("incident endpoint error", slog.Any("error", err))
		if errors.Is(err, e.ErrInvalidInput) {
			h.render.Error(w, http.StatusBadRequest, `Field "message" is required.`, nil)
			return
		}
		h.render.Error(w, http.StatusInternalServerError, "Server error while processing incident.", err)
		return
	}

	h.render.JSON(w, http.StatusOK, domain.IncidentLogResponse{
		Status:       "ok",
		AssistantLog: summary,
	})
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}
