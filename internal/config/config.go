package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides. A double underscore
// separates nested keys: FOLIO_EMAIL__SERVICE_ID -> email.service_id.
const EnvPrefix = "FOLIO_"

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Content   ContentConfig   `koanf:"content"`
	Log       LogConfig       `koanf:"log"`
	Email     EmailConfig     `koanf:"email"`
	Contact   ContactConfig   `koanf:"contact"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Theme     Theme           `koanf:"theme"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Addr           string   `koanf:"addr"`
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// ContentConfig locates the content store
type ContentConfig struct {
	Path string `koanf:"path"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `koanf:"level"`
}

// EmailConfig holds the email relay credentials. The public key is meant to
// be public; the private key is optional.
type EmailConfig struct {
	ServiceID  string        `koanf:"service_id"`
	TemplateID string        `koanf:"template_id"`
	PublicKey  string        `koanf:"public_key"`
	PrivateKey string        `koanf:"private_key"`
	Endpoint   string        `koanf:"endpoint"`
	Recipient  string        `koanf:"recipient"`
	Timeout    time.Duration `koanf:"timeout"`
}

// Configured reports whether all required credentials are present
func (e EmailConfig) Configured() bool {
	return e.ServiceID != "" && e.TemplateID != "" && e.PublicKey != ""
}

// ContactConfig throttles outbound contact messages
type ContactConfig struct {
	RatePerMinute int `koanf:"rate_per_minute"`
	Burst         int `koanf:"burst"`
}

// TelemetryConfig toggles OpenTelemetry tracing
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	ServiceName string `koanf:"service_name"`
}

// Theme holds color scheme settings
type Theme struct {
	Background string `koanf:"background"`
	Text       string `koanf:"text"`
	Accent     string `koanf:"accent"`
	Error      string `koanf:"error"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		},
		Content: ContentConfig{Path: "data/portfolio.json"},
		Log:     LogConfig{Level: "info"},
		Email: EmailConfig{
			Endpoint: "https://api.emailjs.com/api/v1.0/email/send",
			Timeout:  10 * time.Second,
		},
		Contact: ContactConfig{RatePerMinute: 10, Burst: 3},
		Telemetry: TelemetryConfig{
			ServiceName: "folio",
		},
		Theme: Theme{
			Background: "#ffffff",
			Text:       "#111827",
			Accent:     "#6366f1",
			Error:      "#dc2626",
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps FOLIO_EMAIL__SERVICE_ID to email.service_id
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Content.Path == "" {
		return fmt.Errorf("content.path is required")
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if c.Contact.RatePerMinute < 0 || c.Contact.Burst < 0 {
		return fmt.Errorf("contact rate limits must be non-negative")
	}
	if c.Email.Timeout < 0 {
		return fmt.Errorf("email.timeout must be non-negative")
	}
	return nil
}
