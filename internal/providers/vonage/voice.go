package vonage

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Noctua76/noctua-panic-backend/internal/domain"
	"github.com/Noctua76/noctua-panic-backend/pkg/e"
)

type endpoint struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type createCallRequest struct {
	To        []endpoint  `json:"to"`
	From      endpoint    `json:"from"`
	AnswerURL []string    `json:"answer_url,omitempty"`
	EventURL  []string    `json:"event_url,omitempty"`
	NCCO      domain.NCCO `json:"ncco,omitempty"`
}

// PlaceCall starts one outbound call to the recipient. Calls answered are
// driven by the answer webhook when a public base URL is configured, by an
// inline NCCO otherwise.
func (c *Client) PlaceCall(ctx context.Context, to string) (json.RawMessage, error) {
	const op = "vonage.PlaceCall"

	if c.key == nil {
		return nil, e.Wrap(op, e.ErrVoiceNotConfigured)
	}

	token, err := c.applicationToken()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	call := createCallRequest{
		To:   []endpoint{{Type: "phone", Number: msisdn(to)}},
		From: endpoint{Type: "phone", Number: msisdn(c.cfg.From)},
	}
	if c.answerURL != "" {
		call.AnswerURL = []string{c.answerURL}
		call.EventURL = []string{c.eventURL}
	} else {
		call.NCCO = c.ncco
	}

	b, err := json.Marshal(call)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.VoiceURL, bytes.NewReader(b))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, e.WrapError(ctx, op, e.Upstream(providerVoice, resp.StatusCode, truncate(body)))
	}
	if !json.Valid(body) {
		return nil, e.WrapError(ctx, op, e.Upstream(providerVoice, resp.StatusCode, "invalid JSON response"))
	}

	c.logger.Debug("vonage call created", slog.String("to", to), slog.Int("status", resp.StatusCode))
	return body, nil
}

// msisdn strips the formatting the Voice API rejects.
func msisdn(number string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
}
