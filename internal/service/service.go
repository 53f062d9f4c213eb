package service

import (
	"context"
	"encoding/json"

	"github.com/Noctua76/noctua-panic-backend/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Outbound channel adapters.
type SMSSender interface {
	SendSMS(ctx context.Context, to, text string) (json.RawMessage, error)
}

type CallPlacer interface {
	PlaceCall(ctx context.Context, to string) (json.RawMessage, error)
	VoiceEnabled() bool
}

type GatewaySender interface {
	Send(ctx context.Context, phone, message string) (json.RawMessage, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, input string) (string, error)
}

// Use cases consumed by the HTTP layer.
type AlertService interface {
	Dispatch(ctx context.Context, req domain.AlertRequest) (domain.AlertResult, error)
}

type IncidentService interface {
	Log(ctx context.Context, req domain.IncidentLogRequest) (string, error)
}

type MessagingService interface {
	SendGatewaySMS(ctx context.Context, req domain.SendSMSRequest) (json.RawMessage, error)
	SendTestSMS(ctx context.Context, req domain.TestSMSRequest) (json.RawMessage, error)
}

type Service struct {
	AlertService     AlertService
	IncidentService  IncidentService
	MessagingService MessagingService
}

func NewService(
	alertService AlertService,
	incidentService IncidentService,
	messagingService MessagingService,
) *Service {
	return &Service{
		AlertService:     alertService,
		IncidentService:  incidentService,
		MessagingService: messagingService,
	}
}
