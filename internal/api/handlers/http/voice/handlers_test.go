package voice_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Noctua76/noctua-panic-backend/internal/api/handlers/http/voice"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		audioURL string
		method   string
		wantCode int
		wantBody string
	}{
		{"stream on post", "https://cdn.example/alarm.mp3", http.MethodPost, http.StatusOK, `[{"action":"stream","streamUrl":["https://cdn.example/alarm.mp3"]}]`},
		{"stream on get", "https://cdn.example/alarm.mp3", http.MethodGet, http.StatusOK, `[{"action":"stream","streamUrl":["https://cdn.example/alarm.mp3"]}]`},
		{"talk fallback", "", http.MethodPost, http.StatusInternalServerError, `[{"action":"talk","text":"Audio URL is not configured."}]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := voice.NewHandler(newTestLogger(), tt.audioURL)
			rr := httptest.NewRecorder()
			h.Answer(rr, httptest.NewRequest(tt.method, "/webhooks/answer?uuid=c-1", nil))

			if rr.Code != tt.wantCode {
				t.Fatalf("expected %d got %d", tt.wantCode, rr.Code)
			}
			if got := strings.TrimSpace(rr.Body.String()); got != tt.wantBody {
				t.Fatalf("got %s want %s", got, tt.wantBody)
			}
		})
	}
}

func TestEvent_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := voice.NewHandler(newTestLogger(), "")

	reqs := []*http.Request{
		httptest.NewRequest(http.MethodPost, "/webhooks/event", bytes.NewBufferString(`{"status":"answered","uuid":"c-1"}`)),
		httptest.NewRequest(http.MethodPost, "/webhooks/event", bytes.NewBufferString(`not json`)),
		httptest.NewRequest(http.MethodGet, "/webhooks/event?status=completed", nil),
	}
	for _, req := range reqs {
		rr := httptest.NewRecorder()
		h.Event(rr, req)
		if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
			t.Fatalf("%s %s: got %d %q", req.Method, req.URL, rr.Code, rr.Body.String())
		}
	}
}
