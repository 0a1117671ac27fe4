package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"schilderpro/internal/domain/entities"
	"schilderpro/internal/usecase/interfaces"
)

var ErrInvalidContactMessage = errors.New("invalid contact message")

// IContactUseCase forwards general contact-form submissions to the external
// form-submission collaborator.

type IContactUseCase interface {
	Submit(ctx context.Context, msg entities.ContactMessage) error
}

type ContactUseCase struct {
	forwarder interfaces.IFormForwarder
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(forwarder interfaces.IFormForwarder) *ContactUseCase {
	return &ContactUseCase{forwarder: forwarder}
}

func (u *ContactUseCase) Submit(ctx context.Context, msg entities.ContactMessage) error {
	name := strings.TrimSpace(msg.Name)
	email := strings.TrimSpace(msg.Email)
	body := strings.TrimSpace(msg.Body)
	if name == "" || body == "" || !emailPattern.MatchString(email) {
		return ErrInvalidContactMessage
	}

	// Honeypot hit: accept the submission but drop it, bots must not learn
	// they were detected.
	if strings.TrimSpace(msg.Honeypot) != "" {
		log.Printf("[contact][usecase] honeypot triggered, dropping submission")
		return nil
	}
	if u.forwarder == nil {
		return errors.New("form forwarder not configured")
	}

	fields := map[string]string{
		"name":    name,
		"email":   email,
		"message": body,
	}
	if p := strings.TrimSpace(msg.Phone); p != "" {
		fields["phone"] = p
	}
	if s := strings.TrimSpace(msg.Subject); s != "" {
		fields["subject"] = s
	}

	if err := u.forwarder.Forward(ctx, fields); err != nil {
		log.Printf("[contact][usecase] forward failed err=%v", err)
		return err
	}
	return nil
}
