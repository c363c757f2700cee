package domain

import (
	"context"
	"time"
)

// ContactMessage is a contact form submission.
type ContactMessage struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	Subject     string    `json:"subject" bson:"subject"`
	Message     string    `json:"message" bson:"message"`
	SubmittedAt time.Time `json:"submittedAt" bson:"submitted_at"`
}

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	List(ctx context.Context, limit int) ([]*ContactMessage, error)
}

// Mailer relays a contact message to the site owner. The current
// implementation only logs; no real email provider is integrated.
type Mailer interface {
	Send(ctx context.Context, msg *ContactMessage) error
}
