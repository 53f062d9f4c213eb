package openai

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

const provider = "openai"

// Client calls the Responses API to turn a raw incident log into a summary.
type Client struct {
	logger *slog.Logger
	cfg    config.OpenAIConfig
	http   *http.Client
}

func NewClient(logger *slog.Logger, cfg config.OpenAIConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{logger: logger, cfg: cfg, http: httpClient}
}

type responsesRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type responsesResponse struct {
	Output []struct {
		Type    string `json:"type"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) Summarize(ctx context.Context, input string) (string, error) {
	const op = "openai.Summarize"

	b, err := json.Marshal(responsesRequest{Model: c.cfg.Model, Input: input})
	if err != nil {
		return "", e.Wrap(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/responses", bytes.NewReader(b))
	if err != nil {
		return "", e.Wrap(op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", e.WrapError(ctx, op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", e.WrapError(ctx, op, err)
	}

	var parsed responsesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", e.WrapError(ctx, op, e.Upstream(provider, resp.StatusCode, "invalid JSON response"))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := resp.Status
		if parsed.Error != nil && parsed.Error.Message != "" {
			detail = parsed.Error.Message
		}
		return "", e.WrapError(ctx, op, e.Upstream(provider, resp.StatusCode, detail))
	}

	for _, item := range parsed.Output {
		for _, content := range item.Content {
			if content.Type == "output_text" && content.Text != "" {
				c.logger.Debug("openai summary received", slog.Int("chars", len(content.Text)))
				return content.Text, nil
			}
		}
	}

	return "", e.WrapError(ctx, op, e.Upstream(provider, resp.StatusCode, "no output text"))
}
