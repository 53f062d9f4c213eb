package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Noctua76/noctua-panic-backend/internal/domain"
	"github.com/Noctua76/noctua-panic-backend/pkg/e"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

type alertService struct {
	logger     *slog.Logger
	sms        SMSSender
	calls      CallPlacer
	recipients []string
	clock      clock.Clock
}

func NewAlertService(
	logger *slog.Logger,
	sms SMSSender,
	calls CallPlacer,
	recipients []string,
	clk clock.Clock,
) AlertService {
	if clk == nil {
		clk = clock.New()
	}
	return &alertService{
		logger:     logger,
		sms:        sms,
		calls:      calls,
		recipients: append([]string(nil), recipients...),
		clock:      clk,
	}
}

// Dispatch texts every recipient, then rings every recipient. Only the SMS
// phase decides the error; the call phase result is attached as is.
func (s *alertService) Dispatch(ctx context.Context, req domain.AlertRequest) (domain.AlertResult, error) {
	if len(s.recipients) == 0 {
		s.logger.Error("no alert recipients configured (ALERT_RECIPIENTS empty)")
		return domain.AlertResult{}, e.ErrNoRecipients
	}

	res := domain.AlertResult{
		AlertID:    uuid.NewString(),
		Text:       FormatAlert(req, s.clock.Now()),
		Recipients: append([]string(nil), s.recipients...),
	}

	l := s.logger.With(slog.String("alert_id", res.AlertID))
	l.Info("alert dispatch START",
		slog.String("site_id", req.SiteID),
		slog.String("guard_id", req.GuardID),
		slog.String("source", req.Source),
		slog.Int("recipients", len(res.Recipients)),
	)

	// detached: a client hang-up must not abort delivery
	ctx = context.WithoutCancel(ctx)

	res.SMS = fanOut(ctx, l, "sms", res.Recipients, func(ctx context.Context, to string) (json.RawMessage, error) {
		return s.sms.SendSMS(ctx, to, res.Text)
	})
	l.Info("sms phase done", slog.String("status", string(res.SMS.Status)))

	if res.SMS.Status == domain.PhaseFailed {
		res.Calls = skipped("sms phase failed")
		return res, fmt.Errorf("%w: all %d sends failed: %s", e.ErrSMSBatchFailed, len(res.Recipients), res.SMS.Results[0].Error)
	}

	res.Calls = s.callPhase(ctx, l, res.Recipients)
	l.Info("alert dispatch END",
		slog.String("sms", string(res.SMS.Status)),
		slog.String("calls", string(res.Calls.Status)),
	)
	return res, nil
}

func (s *alertService) callPhase(ctx context.Context, l *slog.Logger, recipients []string) domain.Phase {
	if s.calls == nil || !s.calls.VoiceEnabled() {
		l.Warn("call phase skipped", slog.String("reason", e.ErrVoiceNotConfigured.Error()))
		return skipped(e.ErrVoiceNotConfigured.Error())
	}

	p := fanOut(ctx, l, "call", recipients, s.calls.PlaceCall)
	switch p.Status {
	case domain.PhaseFailed:
		l.Error("call phase failed, alert status unaffected")
	case domain.PhasePartial:
		l.Warn("call phase partially failed")
	}
	return p
}

type sendFunc func(ctx context.Context, to string) (json.RawMessage, error)

// fanOut runs send once per recipient concurrently and waits for all of them.
// One failure never cancels the others.
func fanOut(ctx context.Context, l *slog.Logger, channel string, recipients []string, send sendFunc) domain.Phase {
	results := make([]domain.Outcome, len(recipients))

	var wg sync.WaitGroup
	for i, to := range recipients {
		wg.Add(1)
		go func(i int, to string) {
			defer wg.Done()
			results[i] = attempt(ctx, l, channel, to, send)
		}(i, to)
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if !r.OK {
			failed++
		}
	}

	status := domain.PhaseOK
	switch {
	case failed == len(results):
		status = domain.PhaseFailed
	case failed > 0:
		status = domain.PhasePartial
	}
	return domain.Phase{Status: status, Results: results}
}

func attempt(ctx context.Context, l *slog.Logger, channel, to string, send sendFunc) (out domain.Outcome) {
	out.Recipient = to
	defer func() {
		if r := recover(); r != nil {
			l.Error("send panicked", slog.String("channel", channel), slog.String("to", to), slog.Any("panic", r))
			out = domain.Outcome{Recipient: to, Error: fmt.Sprintf("panic: %v", r)}
		}
	}()

	data, err := send(ctx, to)
	out.Data = data
	if err != nil {
		l.Warn("send failed", slog.String("channel", channel), slog.String("to", to), slog.Any("error", err))
		out.Error = err.Error()
		return out
	}
	out.OK = true
	return out
}

func skipped(reason string) domain.Phase {
	return domain.Phase{Status: domain.PhaseSkipped, Reason: reason, Results: []domain.Outcome{}}
}
