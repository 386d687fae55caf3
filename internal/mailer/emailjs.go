package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"folio.dev/internal/config"
)

// DefaultEndpoint is the EmailJS REST send endpoint
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// maxErrorBody caps how much of a provider error body is kept
const maxErrorBody = 1 << 10

// EmailJS sends messages through the EmailJS REST API
type EmailJS struct {
	serviceID  string
	templateID string
	publicKey  string
	privateKey string
	endpoint   string
	client     *http.Client
}

var _ Sender = (*EmailJS)(nil)

// Option customises an EmailJS client
type Option func(*EmailJS)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(e *EmailJS) { e.client = c }
}

// NewEmailJS creates an EmailJS client from the email configuration
func NewEmailJS(cfg config.EmailConfig, opts ...Option) *EmailJS {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	e := &EmailJS{
		serviceID:  cfg.ServiceID,
		templateID: cfg.TemplateID,
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		endpoint:   endpoint,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts one message to the provider
func (e *EmailJS) Send(ctx context.Context, msg Message) error {
	if e.serviceID == "" || e.templateID == "" || e.publicKey == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      e.serviceID,
		TemplateID:     e.templateID,
		UserID:         e.publicKey,
		AccessToken:    e.privateKey,
		TemplateParams: msg.Params(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach email provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &ProviderError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
