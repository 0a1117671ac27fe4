package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"schilderpro/internal/domain/entities"
	mock_interfaces "schilderpro/internal/usecase/interfaces/mocks"
)

const (
	testFrom     = "offerte@schilderpro.example"
	testBusiness = "aanvragen@schilderpro.example"
)

func testBreakdown(t *testing.T) entities.Breakdown {
	t.Helper()
	qty := decimal.RequireFromString("25")
	price := decimal.RequireFromString("12.50")
	return entities.Breakdown{
		Lines: []entities.PricedLine{{
			Kind:      entities.LineItemWalls,
			Quantity:  qty,
			UnitPrice: entities.UnitPrice{Amount: price, Unit: entities.UnitPerM2},
			Subtotal:  decimal.RequireFromString("312.50"),
		}},
		Total:        decimal.RequireFromString("312.50"),
		TableName:    "landelijk",
		TableVersion: "2026-01",
	}
}

func specWith(name, email string) entities.JobSpec {
	return entities.JobSpec{
		Contact: entities.Contact{Name: name, Email: email},
		Region:  "landelijk",
	}
}

func TestQuoteDeliveryUseCase_InvalidContactInfo(t *testing.T) {
	cases := []struct {
		name  string
		spec  entities.JobSpec
	}{
		{"missing name", specWith("   ", "jan@example.com")},
		{"missing email", specWith("Jan", "")},
		{"not an email", specWith("Jan", "not-an-email")},
		{"email with spaces", specWith("Jan", "jan @example.com")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			// No EXPECT: any send attempt fails the test.
			sender := mock_interfaces.NewMockIEmailSender(ctrl)
			u := NewQuoteDeliveryUseCase(sender, testFrom, testBusiness)

			_, err := u.DeliverQuote(context.Background(), c.spec, testBreakdown(t))
			if !errors.Is(err, ErrInvalidContactInfo) {
				t.Fatalf("expected ErrInvalidContactInfo, got %v", err)
			}
		})
	}
}

func TestQuoteDeliveryUseCase_BothSendsSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sender := mock_interfaces.NewMockIEmailSender(ctrl)
	u := NewQuoteDeliveryUseCase(sender, testFrom, testBusiness)

	sender.EXPECT().Send(gomock.Any(), gomock.AssignableToTypeOf(entities.EmailMessage{})).DoAndReturn(
		func(_ context.Context, msg entities.EmailMessage) (string, error) {
			if msg.To != "jan@example.com" || msg.ReplyTo != testBusiness {
				t.Fatalf("unexpected customer message: %+v", msg)
			}
			if !strings.Contains(msg.TextBody, "€ 312,50") || !strings.Contains(msg.HTMLBody, "€ 312,50") {
				t.Fatalf("customer message misses total: %+v", msg)
			}
			return "msg-customer", nil
		},
	)
	sender.EXPECT().Send(gomock.Any(), gomock.AssignableToTypeOf(entities.EmailMessage{})).DoAndReturn(
		func(_ context.Context, msg entities.EmailMessage) (string, error) {
			if msg.To != testBusiness {
				t.Fatalf("unexpected business recipient: %+v", msg)
			}
			if !strings.Contains(msg.TextBody, "jan@example.com") {
				t.Fatalf("business message misses contact info: %s", msg.TextBody)
			}
			return "msg-business", nil
		},
	)

	res, err := u.DeliverQuote(context.Background(), specWith("Jan", "jan@example.com"), testBreakdown(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.QuoteRef == "" {
		t.Fatalf("expected quote ref")
	}
	if !res.Customer.Sent || res.Customer.MessageID != "msg-customer" {
		t.Fatalf("unexpected customer outcome: %+v", res.Customer)
	}
	if !res.Business.Sent || res.Business.MessageID != "msg-business" {
		t.Fatalf("unexpected business outcome: %+v", res.Business)
	}
}

func TestQuoteDeliveryUseCase_BusinessFailureIsNotEscalated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sender := mock_interfaces.NewMockIEmailSender(ctrl)
	u := NewQuoteDeliveryUseCase(sender, testFrom, testBusiness)

	gomock.InOrder(
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-customer", nil),
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("ses throttled")),
	)

	res, err := u.DeliverQuote(context.Background(), specWith("Jan", "jan@example.com"), testBreakdown(t))
	if err != nil {
		t.Fatalf("expected overall success, got %v", err)
	}
	if !res.Customer.Sent {
		t.Fatalf("expected customer sent: %+v", res.Customer)
	}
	if res.Business.Sent || res.Business.ErrorDetail == "" {
		t.Fatalf("expected recorded business failure: %+v", res.Business)
	}
}

func TestQuoteDeliveryUseCase_CustomerFailureIsEscalated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sender := mock_interfaces.NewMockIEmailSender(ctrl)
	u := NewQuoteDeliveryUseCase(sender, testFrom, testBusiness)

	// The business send must still be attempted.
	gomock.InOrder(
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("mailbox rejected")),
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-business", nil),
	)

	res, err := u.DeliverQuote(context.Background(), specWith("Jan", "jan@example.com"), testBreakdown(t))
	if !errors.Is(err, ErrQuoteDeliveryFailed) {
		t.Fatalf("expected ErrQuoteDeliveryFailed, got %v", err)
	}
	if res.Customer.Sent {
		t.Fatalf("expected customer failure recorded: %+v", res.Customer)
	}
	if !res.Business.Sent {
		t.Fatalf("expected business still sent: %+v", res.Business)
	}
}
