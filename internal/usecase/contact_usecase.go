package usecase

import (
	"context"
	"fmt"
	"strings"

	"emplynix-backend/internal/domain"
	"emplynix-backend/pkg/email"
)

type contactUsecase struct {
	emailService email.Sender
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(emailService email.Sender) domain.ContactUsecase {
	return &contactUsecase{
		emailService: emailService,
	}
}

// SendContactMessage validates the contact request and sends the email
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	// Additional validation beyond binding
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(req.Subject) == "" {
		return fmt.Errorf("subject is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("message is required")
	}

	if !uc.emailService.IsConfigured() {
		return fmt.Errorf("email service is not configured")
	}

	emailData := email.ContactEmailData{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		SenderEmail: strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Subject:     strings.TrimSpace(req.Subject),
		Message:     strings.TrimSpace(req.Message),
	}

	if err := uc.emailService.SendContactEmail(emailData); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	return nil
}
