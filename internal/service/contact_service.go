package service

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ContactForm is a validated contact submission. Phone is optional.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ContactService defines the interface for contact form handling
type ContactService interface {
	Submit(ctx context.Context, form ContactForm) error
}

type contactService struct {
	logger *zap.Logger
}

// NewContactService creates a new instance of ContactService
func NewContactService(logger *zap.Logger) ContactService {
	return &contactService{logger: logger}
}

// Submit acknowledges the form. Nothing is persisted or forwarded; the
// submission is only recorded in the log.
func (s *contactService) Submit(ctx context.Context, form ContactForm) error {
	s.logger.Info("Contact form submitted",
		zap.String("name", form.Name),
		zap.String("email", form.Email),
		zap.String("phone", form.Phone),
		zap.String("subject", form.Subject),
		zap.Int("message_length", utf8.RuneCountInString(form.Message)),
	)
	return nil
}
