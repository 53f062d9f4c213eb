package vonage

import (
	"crypto/rsa"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Noctua76/noctua-panic-backend/internal/config"
	"github.com/Noctua76/noctua-panic-backend/internal/domain"

	"github.com/benbjohnson/clock"
	"github.com/golang-jwt/jwt/v5"
)

const (
	providerSMS   = "vonage-sms"
	providerVoice = "vonage-voice"
)

// Client talks to the Vonage SMS and Voice APIs. One attempt per call.
type Client struct {
	logger *slog.Logger
	cfg    config.VonageConfig
	http   *http.Client
	clock  clock.Clock

	key *rsa.PrivateKey

	answerURL string
	eventURL  string
	ncco      domain.NCCO
}

func NewClient(
	logger *slog.Logger,
	cfg config.VonageConfig,
	alert config.AlertConfig,
	httpClient *http.Client,
	clk clock.Clock,
) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if clk == nil {
		clk = clock.New()
	}

	c := &Client{
		logger: logger,
		cfg:    cfg,
		http:   httpClient,
		clock:  clk,
		ncco:   domain.AnswerNCCO(alert.AudioURL),
	}
	if alert.PublicBaseURL != "" {
		c.answerURL = alert.PublicBaseURL + "/webhooks/answer"
		c.eventURL = alert.PublicBaseURL + "/webhooks/event"
	}

	if cfg.VoiceEnabled() {
		key, err := jwt.ParseRSAPrivateKeyFromPEM(cfg.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("vonage: parse private key: %w", err)
		}
		c.key = key
	}

	return c, nil
}

// VoiceEnabled reports whether PlaceCall can authenticate.
func (c *Client) VoiceEnabled() bool {
	return c.key != nil
}
