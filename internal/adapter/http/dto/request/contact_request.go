package request

import (
	"strings"

	"schilderpro/internal/domain/entities"
)

// ContactRequest is the general contact form. Botcheck is the hidden
// honeypot field: humans never fill it.
type ContactRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message" binding:"required"`
	Botcheck string `json:"botcheck"`
}

func (r ContactRequest) ResolveMessage() entities.ContactMessage {
	return entities.ContactMessage{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Phone:    strings.TrimSpace(r.Phone),
		Subject:  strings.TrimSpace(r.Subject),
		Body:     strings.TrimSpace(r.Message),
		Honeypot: r.Botcheck,
	}
}
