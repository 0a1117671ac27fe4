package response

import (
	"schilderpro/internal/domain/entities"
	"schilderpro/internal/domain/pricing"
)

// QuoteLineResponse is one priced row, carrying both raw decimal strings and
// locale-formatted labels so the frontend never re-implements formatting.
type QuoteLineResponse struct {
	Kind      string `json:"kind"`
	Label     string `json:"label"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
	Display   string `json:"display"`
	Color     string `json:"color,omitempty"`
}

type BreakdownResponse struct {
	Lines        []QuoteLineResponse `json:"lines"`
	Total        string              `json:"total"`
	TotalDisplay string              `json:"total_display"`
	TableName    string              `json:"table_name"`
	TableVersion string              `json:"table_version"`
}

type RecipientResponse struct {
	Sent        bool   `json:"sent"`
	MessageID   string `json:"message_id,omitempty"`
	ErrorDetail string `json:"error_detail,omitempty"`
}

type DeliveryResponse struct {
	QuoteRef string            `json:"quote_ref"`
	Customer RecipientResponse `json:"customer"`
	Business RecipientResponse `json:"business"`
}

// QuoteResponse is returned by the production quote endpoint.
type QuoteResponse struct {
	Breakdown BreakdownResponse `json:"breakdown"`
	Delivery  DeliveryResponse  `json:"delivery"`
}

func FromBreakdown(b entities.Breakdown) BreakdownResponse {
	rows := pricing.FormatStructured(b)
	lines := make([]QuoteLineResponse, 0, len(b.Lines))
	for i, line := range b.Lines {
		lines = append(lines, QuoteLineResponse{
			Kind:      string(line.Kind),
			Label:     rows[i].Label,
			Quantity:  rows[i].QuantityLabel,
			UnitPrice: line.UnitPrice.Amount.StringFixed(2),
			Subtotal:  line.Subtotal.StringFixed(2),
			Display:   rows[i].SubtotalLabel,
			Color:     line.Color,
		})
	}
	return BreakdownResponse{
		Lines:        lines,
		Total:        b.Total.StringFixed(2),
		TotalDisplay: pricing.FormatEUR(b.Total),
		TableName:    b.TableName,
		TableVersion: b.TableVersion,
	}
}

func fromRecipient(o entities.RecipientOutcome) RecipientResponse {
	return RecipientResponse{Sent: o.Sent, MessageID: o.MessageID, ErrorDetail: o.ErrorDetail}
}

func FromDeliveryResult(r entities.DeliveryResult) DeliveryResponse {
	return DeliveryResponse{
		QuoteRef: r.QuoteRef,
		Customer: fromRecipient(r.Customer),
		Business: fromRecipient(r.Business),
	}
}

func FromQuote(b entities.Breakdown, r entities.DeliveryResult) QuoteResponse {
	return QuoteResponse{Breakdown: FromBreakdown(b), Delivery: FromDeliveryResult(r)}
}
