package greeksms

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Noctua76/noctua-panic-backend/internal/config"
	"github.com/Noctua76/noctua-panic-backend/pkg/e"
)

const provider = "greeksms"

type Client struct {
	logger *slog.Logger
	cfg    config.GreekSMSConfig
	http   *http.Client
}

func NewClient(logger *slog.Logger, cfg config.GreekSMSConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{logger: logger, cfg: cfg, http: httpClient}
}

type sendRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
	Sender  string `json:"sender"`
}

// Send forwards one message to the gateway and returns its JSON reply as is.
func (c *Client) Send(ctx context.Context, phone, message string) (json.RawMessage, error) {
	const op = "greeksms.Send"

	b, err := json.Marshal(sendRequest{To: phone, Message: message, Sender: c.cfg.SenderID})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(b))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

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
		detail := strings.TrimSpace(string(body))
		if detail == "" {
			detail = resp.Status
		}
		return nil, e.WrapError(ctx, op, e.Upstream(provider, resp.StatusCode, detail))
	}
	if !json.Valid(body) {
		return nil, e.WrapError(ctx, op, e.Upstream(provider, resp.StatusCode, "invalid JSON response"))
	}

	c.logger.Debug("greeksms response", slog.String("to", phone), slog.Int("status", resp.StatusCode))
	return body, nil
}
