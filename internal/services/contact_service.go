package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"folio.dev/internal/mailer"
)

var (
	// ErrMissingField is returned when a required form field is empty
	ErrMissingField = errors.New("missing required fields")
	// ErrInvalidEmail is returned when the sender address does not parse
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrSubmissionInFlight is returned when the same form is submitted again
	// before the first attempt has finished
	ErrSubmissionInFlight = errors.New("submission already in progress")
	// ErrRateLimited is returned when too many messages were sent recently
	ErrRateLimited = errors.New("too many messages, try again later")
)

// Draft is the contact form as filled in by a visitor
type Draft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Missing returns the names of the empty fields
func (d Draft) Missing() []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", d.Name},
		{"email", d.Email},
		{"subject", d.Subject},
		{"message", d.Message},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Validate checks required-field presence and the sender address
func (d Draft) Validate() error {
	if missing := d.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	_, err := d.Address()
	return err
}

// Address returns the bare sender address, so "Grace <g@example.com>"
// yields "g@example.com"
func (d Draft) Address() (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(d.Email))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidEmail, d.Email)
	}
	return addr.Address, nil
}

// ContactOptions configures the ContactService
type ContactOptions struct {
	Recipient     string // address the messages are delivered to
	Fallback      string // address offered to visitors when sending fails
	RatePerMinute int    // 0 disables the limit
	Burst         int
}

// ContactService relays contact form drafts to the email provider
type ContactService struct {
	sender    mailer.Sender
	recipient string
	fallback  string
	limiter   *rate.Limiter
	logger    *zap.Logger
	now       func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewContactService creates a new ContactService
func NewContactService(sender mailer.Sender, opts ContactOptions, logger *zap.Logger) *ContactService {
	limit := rate.Inf
	if opts.RatePerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(opts.RatePerMinute))
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}
	fallback := opts.Fallback
	if fallback == "" {
		fallback = opts.Recipient
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ContactService{
		sender:    sender,
		recipient: opts.Recipient,
		fallback:  fallback,
		limiter:   rate.NewLimiter(limit, burst),
		logger:    logger,
		now:       time.Now,
		inFlight:  make(map[string]struct{}),
	}
}

// Fallback returns the address visitors can write to directly
func (s *ContactService) Fallback() string {
	return s.fallback
}

// NewFormID mints an identifier for a freshly rendered form
func (s *ContactService) NewFormID() string {
	return uuid.NewString()
}

// Submit validates the draft and makes a single send attempt. While an
// attempt for formID is running, further submissions of the same form are
// rejected with ErrSubmissionInFlight. An empty formID is not guarded.
func (s *ContactService) Submit(ctx context.Context, formID string, d Draft) error {
	if err := d.Validate(); err != nil {
		return err
	}
	from, err := d.Address()
	if err != nil {
		return err
	}

	if formID != "" {
		if !s.acquire(formID) {
			return ErrSubmissionInFlight
		}
		defer s.release(formID)
	}

	if !s.limiter.Allow() {
		s.logger.Warn("contact message rate limited", zap.String("form_id", formID))
		return ErrRateLimited
	}

	msg := mailer.Message{
		Name:      strings.TrimSpace(d.Name),
		FromEmail: from,
		Subject:   strings.TrimSpace(d.Subject),
		Body:      d.Message,
		Time:      s.now(),
		ToEmail:   s.recipient,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Error("failed to send contact message",
			zap.String("form_id", formID),
			zap.Error(err))
		return fmt.Errorf("failed to send message: %w", err)
	}

	s.logger.Info("contact message sent",
		zap.String("form_id", formID),
		zap.String("subject", msg.Subject))
	return nil
}

func (s *ContactService) acquire(formID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[formID]; busy {
		return false
	}
	s.inFlight[formID] = struct{}{}
	return true
}

func (s *ContactService) release(formID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, formID)
}
