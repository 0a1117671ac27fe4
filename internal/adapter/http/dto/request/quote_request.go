package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"schilderpro/internal/domain/entities"
)

var (
	ErrUnknownLineItemKind = errors.New("unknown line item kind")
	ErrInvalidProjectType  = errors.New("invalid project type")
)

// QuoteLineItemRequest is one row of the multi-step quote form.
type QuoteLineItemRequest struct {
	Kind     string  `json:"kind" binding:"required"`
	Enabled  bool    `json:"enabled"`
	Quantity float64 `json:"quantity"`
	Color    string  `json:"color"`
}

// QuoteRequest is the payload of both quote endpoints. The calculate
// endpoint ignores contact fields; the request endpoint validates them in
// the delivery usecase, below the binding layer.
type QuoteRequest struct {
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	Phone       string                 `json:"phone"`
	Region      string                 `json:"region"`
	ProjectType string                 `json:"project_type"`
	Items       []QuoteLineItemRequest `json:"items" binding:"required"`
	PhotoURLs   []string               `json:"photo_urls"`
	Message     string                 `json:"message"`
}

// ResolveJobSpec translates the form payload into the immutable domain spec.
//
// Unknown kinds and project types are rejected here, at construction time;
// the old site let typo'd lookup keys price as undefined at runtime.
func (r QuoteRequest) ResolveJobSpec() (entities.JobSpec, error) {
	projectType := entities.ProjectType(strings.TrimSpace(r.ProjectType))
	switch projectType {
	case "", entities.ProjectInterior, entities.ProjectExterior, entities.ProjectBoth:
	default:
		return entities.JobSpec{}, ErrInvalidProjectType
	}

	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		kind := entities.LineItemKind(strings.TrimSpace(it.Kind))
		if !kind.IsValid() {
			return entities.JobSpec{}, ErrUnknownLineItemKind
		}
		items = append(items, entities.LineItem{
			Kind:     kind,
			Enabled:  it.Enabled,
			Quantity: decimal.NewFromFloat(it.Quantity),
			Color:    strings.TrimSpace(it.Color),
		})
	}

	return entities.JobSpec{
		Contact: entities.Contact{
			Name:  strings.TrimSpace(r.Name),
			Email: strings.TrimSpace(r.Email),
			Phone: strings.TrimSpace(r.Phone),
		},
		ProjectType: projectType,
		Region:      strings.TrimSpace(r.Region),
		Items:       items,
		PhotoURLs:   r.PhotoURLs,
		Message:     strings.TrimSpace(r.Message),
	}, nil
}
