package usecase

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"schilderpro/internal/domain/entities"
	"schilderpro/internal/usecase/interfaces"
)

var (
	ErrInvalidContactInfo  = errors.New("invalid contact info")
	ErrQuoteDeliveryFailed = errors.New("customer quote email failed")
)

// Syntactic check only; deliverability is the provider's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IQuoteDeliveryUseCase sends a priced breakdown to the customer and the
// business inbox.

type IQuoteDeliveryUseCase interface {
	DeliverQuote(ctx context.Context, spec entities.JobSpec, breakdown entities.Breakdown) (entities.DeliveryResult, error)
}

type QuoteDeliveryUseCase struct {
	sender      interfaces.IEmailSender
	fromAddress string
	businessTo  string
}

var _ IQuoteDeliveryUseCase = (*QuoteDeliveryUseCase)(nil)

func NewQuoteDeliveryUseCase(sender interfaces.IEmailSender, fromAddress, businessTo string) *QuoteDeliveryUseCase {
	return &QuoteDeliveryUseCase{sender: sender, fromAddress: fromAddress, businessTo: businessTo}
}

// DeliverQuote attempts both sends, always in full.
//
// Behavior:
//   - Contact info is validated before any external call; an invalid name or
//     email fails fast with zero sends.
//   - The two sends are independent: a customer failure does not stop the
//     business notification from being attempted, and vice versa.
//   - Both outcomes are joined into the DeliveryResult before returning.
//   - Only a customer-side failure is escalated as an error; a failed
//     business notification is recorded and logged, the customer already has
//     their quote.
func (u *QuoteDeliveryUseCase) DeliverQuote(ctx context.Context, spec entities.JobSpec, breakdown entities.Breakdown) (entities.DeliveryResult, error) {
	name := strings.TrimSpace(spec.Contact.Name)
	email := strings.TrimSpace(spec.Contact.Email)
	if name == "" || email == "" || !emailPattern.MatchString(email) {
		log.Printf("[delivery][usecase] invalid contact info name_empty=%t email=%q", name == "", email)
		return entities.DeliveryResult{}, ErrInvalidContactInfo
	}
	if u.sender == nil {
		return entities.DeliveryResult{}, errors.New("email sender not configured")
	}

	quoteRef := uuid.NewString()
	log.Printf("[delivery][usecase] deliver start quote_ref=%s lines=%d total=%s", quoteRef, len(breakdown.Lines), breakdown.Total)

	customerMsg := buildCustomerEmail(u.fromAddress, u.businessTo, email, name, breakdown, quoteRef)
	businessMsg := buildBusinessEmail(u.fromAddress, u.businessTo, spec, breakdown, quoteRef)

	result := entities.DeliveryResult{
		QuoteRef: quoteRef,
		Customer: u.send(ctx, entities.RecipientCustomer, quoteRef, customerMsg),
		Business: u.send(ctx, entities.RecipientBusiness, quoteRef, businessMsg),
	}

	if !result.Customer.Sent {
		return result, ErrQuoteDeliveryFailed
	}
	if !result.Business.Sent {
		log.Printf("[delivery][usecase] business notification failed quote_ref=%s detail=%s", quoteRef, result.Business.ErrorDetail)
	}
	return result, nil
}

func (u *QuoteDeliveryUseCase) send(ctx context.Context, role entities.RecipientRole, quoteRef string, msg entities.EmailMessage) entities.RecipientOutcome {
	messageID, err := u.sender.Send(ctx, msg)
	if err != nil {
		log.Printf("[delivery][usecase] send failed quote_ref=%s role=%s err=%v", quoteRef, role, err)
		return entities.RecipientOutcome{Role: role, Sent: false, ErrorDetail: "email send failed"}
	}
	log.Printf("[delivery][usecase] send success quote_ref=%s role=%s message_id=%s", quoteRef, role, messageID)
	return entities.RecipientOutcome{Role: role, Sent: true, MessageID: messageID}
}
