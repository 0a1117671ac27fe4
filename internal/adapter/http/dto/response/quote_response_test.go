package response

import (
	"testing"

	"github.com/shopspring/decimal"

	"schilderpro/internal/domain/entities"
)

func TestFromBreakdown(t *testing.T) {
	b := entities.Breakdown{
		Lines: []entities.PricedLine{{
			Kind:      entities.LineItemWalls,
			Quantity:  decimal.RequireFromString("25"),
			UnitPrice: entities.UnitPrice{Amount: decimal.RequireFromString("12.50"), Unit: entities.UnitPerM2},
			Subtotal:  decimal.RequireFromString("312.50"),
			Color:     "RAL 9010",
		}},
		Total:        decimal.RequireFromString("312.50"),
		TableName:    "landelijk",
		TableVersion: "2026-01",
	}

	res := FromBreakdown(b)
	if len(res.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(res.Lines))
	}
	line := res.Lines[0]
	if line.Kind != "walls" || line.Label != "Muren (RAL 9010)" {
		t.Fatalf("unexpected labels: %+v", line)
	}
	if line.Quantity != "25 m²" || line.UnitPrice != "12.50" || line.Subtotal != "312.50" {
		t.Fatalf("unexpected amounts: %+v", line)
	}
	if line.Display != "€ 312,50" {
		t.Fatalf("unexpected display: %q", line.Display)
	}
	if res.Total != "312.50" || res.TotalDisplay != "€ 312,50" {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if res.TableName != "landelijk" || res.TableVersion != "2026-01" {
		t.Fatalf("unexpected table info: %+v", res)
	}
}

func TestFromDeliveryResult(t *testing.T) {
	r := entities.DeliveryResult{
		QuoteRef: "ref-1",
		Customer: entities.RecipientOutcome{Role: entities.RecipientCustomer, Sent: true, MessageID: "m1"},
		Business: entities.RecipientOutcome{Role: entities.RecipientBusiness, Sent: false, ErrorDetail: "email send failed"},
	}

	res := FromDeliveryResult(r)
	if res.QuoteRef != "ref-1" {
		t.Fatalf("unexpected ref: %+v", res)
	}
	if !res.Customer.Sent || res.Customer.MessageID != "m1" {
		t.Fatalf("unexpected customer: %+v", res.Customer)
	}
	if res.Business.Sent || res.Business.ErrorDetail != "email send failed" {
		t.Fatalf("unexpected business: %+v", res.Business)
	}
}
