package interfaces

import (
	"context"

	"schilderpro/internal/domain/entities"
)

// IEmailSender abstracts the transactional email collaborator (e.g. SES).
//
// Exactly one call is made per recipient; any retry policy belongs to the
// provider, never to this service. Send returns the provider message id.
type IEmailSender interface {
	Send(ctx context.Context, msg entities.EmailMessage) (messageID string, err error)
}
