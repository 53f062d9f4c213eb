package alert

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Noctua76/noctua-panic-backend/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrNoRecipients):
		h.render.Error(w, http.StatusInternalServerError, "No alert recipients configured on server.", nil)
	case errors.Is(err, e.ErrSMSBatchFailed):
		h.render.Error(w, http.StatusInternalServerError, "Alert received but SMS failed", err)
	default:
		h.render.Error(w, http.StatusInternalServerError, "Alert processing failed", err)
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	h.log(r).Warn("invalid request", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
	h.render.Invalid(w, err)
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}
