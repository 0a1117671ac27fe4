package request

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"schilderpro/internal/domain/entities"
)

func TestQuoteRequest_ResolveJobSpec(t *testing.T) {
	r := QuoteRequest{
		Name:        " Jan Jansen ",
		Email:       " jan@example.com ",
		Region:      " Amsterdam ",
		ProjectType: "interior",
		Items: []QuoteLineItemRequest{
			{Kind: "walls", Enabled: true, Quantity: 25, Color: " RAL 9010 "},
			{Kind: "baseboard", Enabled: false, Quantity: 15},
		},
	}

	spec, err := r.ResolveJobSpec()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Contact.Name != "Jan Jansen" || spec.Contact.Email != "jan@example.com" {
		t.Fatalf("unexpected contact: %+v", spec.Contact)
	}
	if spec.Region != "Amsterdam" || spec.ProjectType != entities.ProjectInterior {
		t.Fatalf("unexpected region/type: %+v", spec)
	}
	if len(spec.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(spec.Items))
	}
	if spec.Items[0].Kind != entities.LineItemWalls || !spec.Items[0].Enabled {
		t.Fatalf("unexpected first item: %+v", spec.Items[0])
	}
	if !spec.Items[0].Quantity.Equal(decimal.RequireFromString("25")) {
		t.Fatalf("unexpected quantity: %s", spec.Items[0].Quantity)
	}
	if spec.Items[0].Color != "RAL 9010" {
		t.Fatalf("unexpected color: %q", spec.Items[0].Color)
	}
	if spec.Items[1].Enabled {
		t.Fatalf("expected disabled second item")
	}
}

func TestQuoteRequest_ResolveJobSpec_UnknownKind(t *testing.T) {
	r := QuoteRequest{
		Items: []QuoteLineItemRequest{{Kind: "wallpaper", Enabled: true, Quantity: 10}},
	}
	_, err := r.ResolveJobSpec()
	if !errors.Is(err, ErrUnknownLineItemKind) {
		t.Fatalf("expected ErrUnknownLineItemKind, got %v", err)
	}
}

func TestQuoteRequest_ResolveJobSpec_InvalidProjectType(t *testing.T) {
	r := QuoteRequest{ProjectType: "garden"}
	_, err := r.ResolveJobSpec()
	if !errors.Is(err, ErrInvalidProjectType) {
		t.Fatalf("expected ErrInvalidProjectType, got %v", err)
	}
}

func TestQuoteRequest_ResolveJobSpec_EmptyItems(t *testing.T) {
	// Zero items is a valid spec; the calculator prices it at zero.
	spec, err := (QuoteRequest{}).ResolveJobSpec()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spec.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(spec.Items))
	}
}
