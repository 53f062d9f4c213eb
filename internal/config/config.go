package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Vonage   VonageConfig   `json:"vonage"`
	GreekSMS GreekSMSConfig `json:"greek_sms"`
	OpenAI   OpenAIConfig   `json:"openai"`
	Alert    AlertConfig    `json:"alert"`

	// ProviderTimeout bounds a single outbound provider call.
	ProviderTimeout time.Duration `json:"provider_timeout"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	AllowedOrigins  []string      `json:"allowed_origins"`
	MaxBodyBytes    int64         `json:"max_body_bytes"`
}

type VonageConfig struct {
	APIKey        string `json:"api_key,omitempty"`
	APISecret     string `json:"-"`
	From          string `json:"from"`
	ApplicationID string `json:"application_id"`
	PrivateKey    []byte `json:"-"`
	SMSURL        string `json:"sms_url"`
	VoiceURL      string `json:"voice_url"`
}

// VoiceEnabled reports whether outbound calls can be authenticated.
func (v VonageConfig) VoiceEnabled() bool {
	return v.ApplicationID != "" && len(v.PrivateKey) > 0
}

type GreekSMSConfig struct {
	APIKey   string `json:"-"`
	SenderID string `json:"sender_id"`
	URL      string `json:"url"`
}

type OpenAIConfig struct {
	APIKey  string `json:"-"`
	Model   string `json:"model"`
	BaseURL string `json:"base_url"`
}

type AlertConfig struct {
	Recipients    []string `json:"recipients"`
	AudioURL      string   `json:"audio_url"`
	PublicBaseURL string   `json:"public_base_url"`
}

func Load() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	privateKey, err := loadPrivateKey()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            resolvePort(),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			AllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			MaxBodyBytes:    int64(getEnvInt("HTTP_MAX_BODY_BYTES", 1<<20)),
		},
		Vonage: VonageConfig{
			APIKey:        getEnv("VONAGE_API_KEY", ""),
			APISecret:     getEnv("VONAGE_API_SECRET", ""),
			From:          getEnv("VONAGE_FROM", "+12029334212"),
			ApplicationID: getEnv("VONAGE_APPLICATION_ID", ""),
			PrivateKey:    privateKey,
			SMSURL:        getEnv("VONAGE_SMS_URL", "https://rest.nexmo.com/sms/json"),
			VoiceURL:      getEnv("VONAGE_VOICE_URL", "https://api.nexmo.com/v1/calls"),
		},
		GreekSMS: GreekSMSConfig{
			APIKey:   getEnv("GREEK_SMS_API_KEY", ""),
			SenderID: getEnv("GREEK_SMS_SENDER_ID", ""),
			URL:      getEnv("GREEK_SMS_URL", "https://www.greecesms.gr/api/send"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			Model:   getEnv("OPENAI_MODEL", "gpt-4.1-mini"),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		},
		Alert: AlertConfig{
			Recipients:    ParseRecipients(getEnv("ALERT_RECIPIENTS", os.Getenv("ALERT_TARGET"))),
			AudioURL:      getEnv("ALERT_AUDIO_URL", ""),
			PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", ""), "/"),
		},
		ProviderTimeout: getEnvDuration("PROVIDER_TIMEOUT", 15*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.Int("alert_recipients", len(cfg.Alert.Recipients)),
		slog.Bool("voice_enabled", cfg.Vonage.VoiceEnabled()),
		slog.Bool("audio_configured", cfg.Alert.AudioURL != ""),
		slog.String("openai_model", cfg.OpenAI.Model))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("PORT must be a number like 5000 or HTTP_PORT like ':5000'")
	}
	if _, err := strconv.Atoi(c.Http.Port[1:]); err != nil {
		return fmt.Errorf("invalid port %q", c.Http.Port)
	}

	if c.Vonage.ApplicationID != "" && len(c.Vonage.PrivateKey) == 0 {
		return errors.New("VONAGE_APPLICATION_ID set without VONAGE_PRIVATE_KEY or VONAGE_PRIVATE_KEY_PATH")
	}

	if c.ProviderTimeout <= 0 {
		return errors.New("PROVIDER_TIMEOUT must be positive")
	}

	return nil
}

// ParseRecipients splits a comma-delimited list into trimmed, non-empty,
// distinct entries in order of first occurrence.
func ParseRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func resolvePort() string {
	if p := os.Getenv("HTTP_PORT"); p != "" {
		return p
	}
	p := getEnv("PORT", "5000")
	if !strings.HasPrefix(p, ":") {
		p = ":" + p
	}
	return p
}

func loadPrivateKey() ([]byte, error) {
	if v := os.Getenv("VONAGE_PRIVATE_KEY"); v != "" {
		// single-line env values carry escaped newlines
		return []byte(strings.ReplaceAll(v, `\n`, "\n")), nil
	}
	path := os.Getenv("VONAGE_PRIVATE_KEY_PATH")
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read VONAGE_PRIVATE_KEY_PATH: %w", err)
	}
	return b, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		if list := ParseRecipients(v); len(list) > 0 {
			return list
		}
	}
	return def
}
