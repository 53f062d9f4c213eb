package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Noctua76/noctua-panic-backend/internal/domain"
	"github.com/Noctua76/noctua-panic-backend/internal/render"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Sender interface {
	SendGatewaySMS(ctx context.Context, req domain.SendSMSRequest) (json.RawMessage, error)
	SendTestSMS(ctx context.Context, req domain.TestSMSRequest) (json.RawMessage, error)
}

type Handler struct {
	logger *slog.Logger
	render *render.Renderer
	Sender Sender
}

func NewHandler(logger *slog.Logger, sender Sender) *Handler {
	return &Handler{
		logger: logger,
		render: render.NewRenderer(logger),
		Sender: sender,
	}
}

// SendSMS relays one message through the SMS gateway.
func (h *Handler) SendSMS(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.SendSMSRequest
	if err := render.Bind(r, &req); err != nil {
		l.Warn("invalid send-sms request", slog.String("error", err.Error()))
		h.render.Invalid(w, err)
		return
	}

	data, err := h.Sender.SendGatewaySMS(r.Context(), req)
	if err != nil {
		l.Error("SMS error", slog.Any("error", err))
		h.render.Error(w, http.StatusInternalServerError, "SMS sending failed", err)
		return
	}

	h.render.JSON(w, http.StatusOK, domain.SMSResponse{Status: "ok", Data: data})
}

// TestSMS relays one message through the voice/SMS aggregator.
func (h *Handler) TestSMS(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.TestSMSRequest
	if err := render.Bind(r, &req); err != nil {
		l.Warn("invalid test-sms request", slog.String("error", err.Error()))
		h.render.Invalid(w, err)
		return
	}

	data, err := h.Sender.SendTestSMS(r.Context(), req)
	if err != nil {
		l.Error("Vonage SMS error", slog.Any("error", err))
		h.render.Error(w, http.StatusInternalServerError, "SMS failed", err)
		return
	}

	h.render.JSON(w, http.StatusOK, domain.SMSResponse{Status: "ok", Data: data})
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}
