package entities

// RecipientRole distinguishes the two independent quote recipients.

type RecipientRole string

const (
	RecipientCustomer RecipientRole = "customer"
	RecipientBusiness RecipientRole = "business"
)

// RecipientOutcome is the send result for a single recipient.
//
// Sent carries the provider message id; a failed send carries a sanitized
// error detail (full provider errors go to the log, not to callers).
type RecipientOutcome struct {
	Role        RecipientRole `json:"role"`
	Sent        bool          `json:"sent"`
	MessageID   string        `json:"message_id,omitempty"`
	ErrorDetail string        `json:"error_detail,omitempty"`
}

// DeliveryResult is the joined outcome of the dual quote send.
//
// Criticality is asymmetric: the operation as a whole fails only when the
// customer-facing send failed. A failed business notification is recorded
// here and logged, but the customer already has their quote.
type DeliveryResult struct {
	QuoteRef string           `json:"quote_ref"`
	Customer RecipientOutcome `json:"customer"`
	Business RecipientOutcome `json:"business"`
}

// EmailMessage is the transactional-email contract handed to the sender
// collaborator: one call per recipient, no internal retry.
type EmailMessage struct {
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}
