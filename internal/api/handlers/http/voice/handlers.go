package voice

import (
	"log/slog"
	"net/http"

	"github.com/Noctua76/noctua-panic-backend/internal/domain"
	"github.com/Noctua76/noctua-panic-backend/internal/render"
	"github.com/Noctua76/noctua-panic-backend/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Handler answers the webhooks Vonage calls during an active call.
type Handler struct {
	logger   *slog.Logger
	render   *render.Renderer
	audioURL string
}

func NewHandler(logger *slog.Logger, audioURL string) *Handler {
	return &Handler{
		logger:   logger,
		render:   render.NewRenderer(logger),
		audioURL: audioURL,
	}
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	if h.audioURL == "" {
		l.Error("answer webhook", slog.Any("error", e.ErrAudioNotConfigured))
		h.render.JSON(w, http.StatusInternalServerError, domain.AnswerNCCO(""))
		return
	}

	l.Info("answer webhook", slog.String("uuid", r.URL.Query().Get("uuid")))
	h.render.JSON(w, http.StatusOK, domain.AnswerNCCO(h.audioURL))
}

func (h *Handler) Event(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	if r.Method == http.MethodGet {
		l.Info("VONAGE VOICE EVENT", slog.Any("query", r.URL.Query()))
	} else {
		var event map[string]any
		if err := render.BindLoose(r, &event); err != nil {
			l.Warn("VONAGE VOICE EVENT: undecodable body", slog.String("error", err.Error()))
		} else {
			l.Info("VONAGE VOICE EVENT", slog.Any("event", event))
		}
	}

	h.render.Text(w, http.StatusOK, "ok")
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}
