package domain

import "context"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates and relays a contact form message to the
	// agency mailbox. Failures surface synchronously; there is no retry.
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
