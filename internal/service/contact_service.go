package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/harshmehta/portfolio-api/internal/domain"
)

// ErrMissingFields is returned when a contact submission lacks required fields
var ErrMissingFields = errors.New("missing required fields")

// ContactService validates, persists, and relays contact form submissions
type ContactService struct {
	repository domain.ContactRepository
	mailer     domain.Mailer
}

// NewContactService creates a new contact service
func NewContactService(repository domain.ContactRepository, mailer domain.Mailer) *ContactService {
	return &ContactService{
		repository: repository,
		mailer:     mailer,
	}
}

// Submit validates and stores a submission, then relays it to the site owner.
// Relay failure is non-fatal: the submission is already persisted.
func (s *ContactService) Submit(ctx context.Context, msg *domain.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return ErrMissingFields
	}

	msg.SubmittedAt = time.Now().UTC()

	if err := s.repository.Create(ctx, msg); err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Printf("Warning: failed to relay contact message %s: %v", msg.ID, err)
	}

	return nil
}

// Recent returns the latest submissions for the admin area
func (s *ContactService) Recent(ctx context.Context, limit int) ([]*domain.ContactMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repository.List(ctx, limit)
}

// LogMailer is a stand-in email relay that only logs the message.
// No real email provider is integrated.
type LogMailer struct {
	From       string
	Recipients []string
}

// Send logs the message that would have been emailed
func (m *LogMailer) Send(_ context.Context, msg *domain.ContactMessage) error {
	log.Printf("Contact form submission from %s <%s> to %v: %s",
		msg.Name, msg.Email, m.Recipients, msg.Subject)
	return nil
}
