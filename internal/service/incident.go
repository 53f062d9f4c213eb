package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Noctua76/noctua-panic-backend/internal/domain"
	"github.com/Noctua76/noctua-panic-backend/pkg/e"

	"github.com/benbjohnson/clock"
)

// IncidentFallback replaces the summary whenever the summarizer fails.
const IncidentFallback = "Assistant failed to process log"

type incidentService struct {
	logger     *slog.Logger
	summarizer Summarizer
	clock      clock.Clock
}

func NewIncidentService(logger *slog.Logger, summarizer Summarizer, clk clock.Clock) IncidentService {
	if clk == nil {
		clk = clock.New()
	}
	return &incidentService{logger: logger, summarizer: summarizer, clock: clk}
}

func (s *incidentService) Log(ctx context.Context, req domain.IncidentLogRequest) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", fmt.Errorf("%w: message is required", e.ErrInvalidInput)
	}

	s.logger.Info("RAW INCIDENT LOG",
		slog.String("guard_id", req.GuardID),
		slog.String("site_id", req.SiteID),
		slog.String("timestamp", req.Timestamp),
		slog.String("message", req.Message),
	)

	summary, err := s.summarizer.Summarize(ctx, FormatIncidentPrompt(req, s.clock.Now()))
	if err != nil {
		s.logger.Error("assistant error", slog.Any("error", err))
		summary = IncidentFallback
	}

	s.logger.Info("ASSISTANT INCIDENT SUMMARY", slog.String("summary", summary))
	return summary, nil
}
