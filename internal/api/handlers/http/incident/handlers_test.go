package incident_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Noctua76/noctua-panic-backend/internal/api/handlers/http/incident"
	mock_incident "github.com/Noctua76/noctua-panic-backend/internal/api/handlers/http/incident/mocks"
	"github.com/Noctua76/noctua-panic-backend/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestIncidentLog_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_incident.NewMockIncidentLogger(ctrl)
	h := incident.NewHandler(newTestLogger(), svc)

	wantReq := domain.IncidentLogRequest{GuardID: "G1", SiteID: "S1", Timestamp: "t0", Message: "Window broken"}
	svc.EXPECT().Log(gomock.Any(), wantReq).Return("Broken window reported.", nil).Times(1)

	body := `{"guardId":"G1","siteId":"S1","timestamp":"t0","message":"Window broken"}`
	rr := httptest.NewRecorder()
	h.IncidentLog(rr, httptest.NewRequest(http.MethodPost, "/incident-log", bytes.NewBufferString(body)))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}
	var got domain.IncidentLogResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got != (domain.IncidentLogResponse{Status: "ok", AssistantLog: "Broken window reported."}) {
		t.Fatalf("unexpected body %+v", got)
	}
}

func TestIncidentLog_MissingMessage_400_NoCall(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"", `{}`, `{"message":""}`, `{"guardId":"G1","message":"   "}`} {
		body := body
		t.Run(body, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no EXPECT: any call to the service fails the test
			svc := mock_incident.NewMockIncidentLogger(ctrl)
			h := incident.NewHandler(newTestLogger(), svc)

			rr := httptest.NewRecorder()
			h.IncidentLog(rr, httptest.NewRequest(http.MethodPost, "/incident-log", bytes.NewBufferString(body)))

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d", rr.Code)
			}
			var got domain.ErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
				t.Fatal(err)
			}
			if got.Message != `Field "message" is required.` {
				t.Fatalf("unexpected message %q", got.Message)
			}
		})
	}
}

func TestIncidentLog_ServiceError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_incident.NewMockIncidentLogger(ctrl)
	h := incident.NewHandler(newTestLogger(), svc)

	svc.EXPECT().Log(gomock.Any(), gomock.Any()).Return("", errors.New("boom")).Times(1)

	rr := httptest.NewRecorder()
	h.IncidentLog(rr, httptest.NewRequest(http.MethodPost, "/incident-log", bytes.NewBufferString(`{"message":"x"}`)))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rr.Code)
	}
}
