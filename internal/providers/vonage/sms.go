package vonage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/Noctua76/noctua-panic-backend/pkg/e"

	"github.com/google/uuid"
)

type smsResponse struct {
	MessageCount string       `json:"message-count"`
	Messages     []smsMessage `json:"messages"`
}

type smsMessage struct {
	To        string `json:"to"`
	MessageID string `json:"message-id"`
	Status    string `json:"status"`
	ErrorText string `json:"error-text"`
}

// SendSMS posts one message. The parsed provider body is returned even when
// the provider rejected the message, alongside the error.
func (c *Client) SendSMS(ctx context.Context, to, text string) (json.RawMessage, error) {
	const op = "vonage.SendSMS"

	form := url.Values{}
	form.Set("api_key", c.cfg.APIKey)
	form.Set("api_secret", c.cfg.APISecret)
	form.Set("to", to)
	form.Set("from", c.cfg.From)
	form.Set("text", text)
	form.Set("client-ref", uuid.NewString())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.SMSURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

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
		return nil, e.WrapError(ctx, op, e.Upstream(providerSMS, resp.StatusCode, truncate(body)))
	}

	var parsed smsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, e.WrapError(ctx, op, e.Upstream(providerSMS, resp.StatusCode, "invalid JSON response"))
	}

	c.logger.Debug("vonage sms response",
		slog.String("to", to),
		slog.String("message_count", parsed.MessageCount),
	)

	for _, m := range parsed.Messages {
		if m.Status != "0" {
			detail := fmt.Sprintf("message status %s: %s", m.Status, m.ErrorText)
			return body, e.WrapError(ctx, op, e.Upstream(providerSMS, resp.StatusCode, detail))
		}
	}
	if len(parsed.Messages) == 0 {
		return body, e.WrapError(ctx, op, e.Upstream(providerSMS, resp.StatusCode, "no messages in response"))
	}

	return body, nil
}

func truncate(b []byte) string {
	const max = 512
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return s[:max] + "..."
	}
	if s == "" {
		return "empty response body"
	}
	return s
}
