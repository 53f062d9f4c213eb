package components

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/Noctua76/noctua-panic-backend/internal/api"
	"github.com/Noctua76/noctua-panic-backend/internal/config"
	"github.com/Noctua76/noctua-panic-backend/internal/providers/greeksms"
	"github.com/Noctua76/noctua-panic-backend/internal/providers/openai"
	"github.com/Noctua76/noctua-panic-backend/internal/providers/vonage"
	"github.com/Noctua76/noctua-panic-backend/internal/service"
	"github.com/Noctua76/noctua-panic-backend/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	httpClient *http.Client
}

func InitComponents(cfg *config.Config, logger *slog.Logger) (*Components, error) {
	clk := clock.New()

	// one client for every provider; Timeout bounds each outbound attempt
	httpClient := &http.Client{Timeout: cfg.ProviderTimeout}

	logger.Info("Initializing Vonage client", slog.Bool("voice_enabled", cfg.Vonage.VoiceEnabled()))
	vonageClient, err := vonage.NewClient(logger, cfg.Vonage, cfg.Alert, httpClient, clk)
	if err != nil {
		logger.Error("Failed to init vonage", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init vonage: %w", err)
	}

	greekSMS := greeksms.NewClient(logger, cfg.GreekSMS, httpClient)
	assistant := openai.NewClient(logger, cfg.OpenAI, httpClient)

	if len(cfg.Alert.Recipients) == 0 {
		logger.Warn("ALERT_RECIPIENTS is empty, /alert will fail until it is configured")
	}

	alertSvc := service.NewAlertService(logger, vonageClient, vonageClient, cfg.Alert.Recipients, clk)
	incidentSvc := service.NewIncidentService(logger, assistant, clk)
	messagingSvc := service.NewMessagingService(logger, greekSMS, vonageClient)

	svc := service.NewService(alertSvc, incidentSvc, messagingSvc)

	httpServer := api.NewServer(cfg, logger, svc)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		httpClient: httpClient,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Components shutdown started")

	c.httpClient.CloseIdleConnections()

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
