package entities

import (
	"errors"
	"time"
)

// Message é uma mensagem do mural interno. Append-only.
type Message struct {
	ID         uint
	FromEmail  string
	ToEmail    string
	Subject    string
	Body       string
	SentAt     time.Time
	IsRead     bool
	IsFeedback bool
}

// Validate valida regras de negócio da entidade Message
func (m *Message) Validate() error {
	if m.FromEmail == "" {
		return errors.New("from_email is required")
	}

	if m.ToEmail == "" {
		return errors.New("to_email is required")
	}

	if m.Subject == "" {
		return errors.New("subject is required")
	}

	if m.Body == "" {
		return errors.New("body is required")
	}

	return nil
}
