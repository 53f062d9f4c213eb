package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/mock/gomock"

	"github.com/Noctua76/noctua-panic-backend/internal/domain"
	"github.com/Noctua76/noctua-panic-backend/internal/service"
	mock_service "github.com/Noctua76/noctua-panic-backend/internal/service/mocks"
	"github.com/Noctua76/noctua-panic-backend/pkg/e"
)

func TestIncidentLog_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clk := clock.NewMock()
	clk.Set(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	summarizer := mock_service.NewMockSummarizer(ctrl)
	summarizer.EXPECT().
		Summarize(gomock.Any(), "Guard ID: G1\nSite ID: S1\nTime: 2024-01-01T12:00:00.000Z\n\nIncident description:\nSmoke in lobby").
		Return("Smoke reported in lobby by G1.", nil).
		Times(1)

	svc := service.NewIncidentService(newTestLogger(), summarizer, clk)

	got, err := svc.Log(context.Background(), domain.IncidentLogRequest{GuardID: "G1", SiteID: "S1", Message: "Smoke in lobby"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "Smoke reported in lobby by G1." {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestIncidentLog_SummarizerFailureFallsBack(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summarizer := mock_service.NewMockSummarizer(ctrl)
	summarizer.EXPECT().
		Summarize(gomock.Any(), gomock.Any()).
		Return("", errors.New("openai down")).
		Times(1)

	svc := service.NewIncidentService(newTestLogger(), summarizer, nil)

	got, err := svc.Log(context.Background(), domain.IncidentLogRequest{Message: "x", Timestamp: "t0"})
	if err != nil {
		t.Fatalf("fallback must not error: %v", err)
	}
	if got != service.IncidentFallback {
		t.Fatalf("got %q want fallback", got)
	}
}

func TestIncidentLog_MissingMessage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summarizer := mock_service.NewMockSummarizer(ctrl)
	svc := service.NewIncidentService(newTestLogger(), summarizer, nil)

	for _, msg := range []string{"", "  \n"} {
		_, err := svc.Log(context.Background(), domain.IncidentLogRequest{Message: msg})
		if !errors.Is(err, e.ErrInvalidInput) || !strings.Contains(err.Error(), "message") {
			t.Fatalf("message %q: expected invalid input, got %v", msg, err)
		}
	}
}
