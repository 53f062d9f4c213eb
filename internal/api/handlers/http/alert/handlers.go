package alert

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Noctua76/noctua-panic-backend/internal/domain"
	"github.com/Noctua76/noctua-panic-backend/internal/render"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Dispatcher interface {
	Dispatch(ctx context.Context, req domain.AlertRequest) (domain.AlertResult, error)
}

type Handler struct {
	logger     *slog.Logger
	render     *render.Renderer
	Dispatcher Dispatcher
}

func NewHandler(logger *slog.Logger, dispatcher Dispatcher) *Handler {
	return &Handler{
		logger:     logger,
		render:     render.NewRenderer(logger),
		Dispatcher: dispatcher,
	}
}

// TriggerAlert acknowledges a trigger without dispatching anything.
func (h *Handler) TriggerAlert(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var body map[string]any
	if err := render.BindLoose(r, &body); err != nil {
		h.badRequest(w, r, err)
		return
	}

	l.Info("alert received", slog.Any("body", body))
	h.render.JSON(w, http.StatusOK, domain.TriggerAlertResponse{
		Status:  "ok",
		Message: "Alert received by backend",
	})
}

func (h *Handler) Alert(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.AlertRequest
	if err := render.BindLoose(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	l.Info("ALERT ENDPOINT HIT",
		slog.String("site_id", req.SiteID),
		slog.String("guard_id", req.GuardID),
		slog.String("triggered_at", req.TriggeredAt),
		slog.String("source", req.Source),
	)

	res, err := h.Dispatcher.Dispatch(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	msg := "Alert received & SMS sent"
	if res.SMS.Status == domain.PhasePartial {
		sent := 0
		for _, o := range res.SMS.Results {
			if o.OK {
				sent++
			}
		}
		msg = fmt.Sprintf("Alert received & SMS sent to %d of %d recipients", sent, len(res.Recipients))
	}

	l.Info("alert handled",
		slog.String("alert_id", res.AlertID),
		slog.String("sms", string(res.SMS.Status)),
		slog.String("calls", string(res.Calls.Status)),
	)

	h.render.JSON(w, http.StatusOK, domain.AlertResponse{
		Status:      "ok",
		Message:     msg,
		AlertID:     res.AlertID,
		Recipients:  res.Recipients,
		SMSPhase:    res.SMS.Status,
		SMSResults:  res.SMS.Results,
		CallPhase:   res.Calls.Status,
		CallResults: res.Calls.Results,
	})
}
