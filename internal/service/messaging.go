package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Noctua76/noctua-panic-backend/internal/domain"
)

type messagingService struct {
	logger  *slog.Logger
	gateway GatewaySender
	sms     SMSSender
}

func NewMessagingService(logger *slog.Logger, gateway GatewaySender, sms SMSSender) MessagingService {
	return &messagingService{logger: logger, gateway: gateway, sms: sms}
}

func (s *messagingService) SendGatewaySMS(ctx context.Context, req domain.SendSMSRequest) (json.RawMessage, error) {
	data, err := s.gateway.Send(ctx, req.Phone, req.Message)
	if err != nil {
		s.logger.Error("gateway sms failed", slog.String("to", req.Phone), slog.Any("error", err))
		return nil, err
	}
	s.logger.Info("gateway sms sent", slog.String("to", req.Phone))
	return data, nil
}

func (s *messagingService) SendTestSMS(ctx context.Context, req domain.TestSMSRequest) (json.RawMessage, error) {
	data, err := s.sms.SendSMS(ctx, req.To, req.Text)
	if err != nil {
		s.logger.Error("vonage sms failed", slog.String("to", req.To), slog.Any("error", err))
		return nil, err
	}
	s.logger.Info("vonage sms sent", slog.String("to", req.To))
	return data, nil
}
