// Package mailer relays contact messages through a transactional email API.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotConfigured is returned when the relay credentials are missing
var ErrNotConfigured = errors.New("email relay is not configured")

// Message is one contact message as handed to the provider
type Message struct {
	Name      string
	FromEmail string
	Subject   string
	Body      string
	Time      time.Time
	ToEmail   string
}

// Params returns the template parameters the provider fills in
func (m Message) Params() map[string]string {
	return map[string]string{
		"name":       m.Name,
		"from_email": m.FromEmail,
		"subject":    m.Subject,
		"message":    m.Body,
		"time":       m.Time.UTC().Format(time.RFC3339),
		"to_email":   m.ToEmail,
	}
}

// Sender delivers a message. Implementations make exactly one attempt.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ProviderError is returned when the provider rejects a message
type ProviderError struct {
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("email provider returned status %d", e.Status)
	}
	return fmt.Sprintf("email provider returned status %d: %s", e.Status, e.Body)
}
