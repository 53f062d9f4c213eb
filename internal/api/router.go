package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Noctua76/noctua-panic-backend/internal/api/handlers/http/alert"
	"github.com/Noctua76/noctua-panic-backend/internal/api/handlers/http/incident"
	"github.com/Noctua76/noctua-panic-backend/internal/api/handlers/http/messaging"
	"github.com/Noctua76/noctua-panic-backend/internal/api/handlers/http/system"
	"github.com/Noctua76/noctua-panic-backend/internal/api/handlers/http/voice"
	"github.com/Noctua76/noctua-panic-backend/internal/config"
	"github.com/Noctua76/noctua-panic-backend/internal/middleware"
	"github.com/Noctua76/noctua-panic-backend/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

type Handlers struct {
	Alert     *alert.Handler
	Incident  *incident.Handler
	Messaging *messaging.Handler
	Voice     *voice.Handler
	System    *system.Handler
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	h := Handlers{
		Alert:     alert.NewHandler(logger, svc.AlertService),
		Incident:  incident.NewHandler(logger, svc.IncidentService),
		Messaging: messaging.NewHandler(logger, svc.MessagingService),
		Voice:     voice.NewHandler(logger, cfg.Alert.AudioURL),
		System:    system.NewHandler(logger),
	}

	return &Server{
		logger: logger,
		router: InitRouter(cfg, h, logger),
		cfg:    *cfg,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func InitRouter(cfg *config.Config, h Handlers, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	// request_id must exist before the access log reads it
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Http.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(middleware.BodyLimit(cfg.Http.MaxBodyBytes))

	r.Get("/", h.System.Root)
	r.With(chimw.NoCache).Get("/health", h.System.SystemHealth)

	r.Post("/trigger-alert", h.Alert.TriggerAlert)
	r.Post("/alert", h.Alert.Alert)
	r.Post("/incident-log", h.Incident.IncidentLog)

	r.Post("/send-sms", h.Messaging.SendSMS)
	r.Post("/test-sms", h.Messaging.TestSMS)

	// Vonage may be configured to call either method
	r.Route("/webhooks", func(wr chi.Router) {
		wr.Get("/answer", h.Voice.Answer)
		wr.Post("/answer", h.Voice.Answer)
		wr.Get("/event", h.Voice.Event)
		wr.Post("/event", h.Voice.Event)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
