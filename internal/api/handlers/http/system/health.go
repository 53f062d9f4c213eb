package system

import (
	"net/http"

	"log/slog"

	"github.com/Noctua76/noctua-panic-backend/internal/domain"
	"github.com/Noctua76/noctua-panic-backend/internal/render"
)

const rootBanner = "Noctua Panic Backend is running"

type Handler struct {
	logger *slog.Logger
	render *render.Renderer
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger, render: render.NewRenderer(logger)}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.render.Text(w, http.StatusOK, rootBanner)
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, domain.HealthResponse{Status: "ok"})
}
