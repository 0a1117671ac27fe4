package usecase

import (
	"context"
	"errors"
	"log"

	"schilderpro/internal/domain/entities"
	"schilderpro/internal/domain/pricing"
)

// IQuoteUseCase exposes the two quote surfaces, both backed by the one
// pricing engine:
//   - Calculate() is the bare computation, used by the internal rate-testing
//     endpoint.
//   - RequestQuote() is the production path: compute, then email the result
//     to customer and business.

type IQuoteUseCase interface {
	Calculate(ctx context.Context, spec entities.JobSpec) (entities.Breakdown, error)
	RequestQuote(ctx context.Context, spec entities.JobSpec) (entities.Breakdown, entities.DeliveryResult, error)
}

type QuoteUseCase struct {
	delivery IQuoteDeliveryUseCase
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(delivery IQuoteDeliveryUseCase) *QuoteUseCase {
	return &QuoteUseCase{delivery: delivery}
}

func (u *QuoteUseCase) Calculate(ctx context.Context, spec entities.JobSpec) (entities.Breakdown, error) {
	table, err := pricing.SelectRateTable(spec.Region)
	if err != nil {
		return entities.Breakdown{}, err
	}

	breakdown, err := pricing.ComputeBreakdown(spec, table)
	if err != nil {
		log.Printf("[quote][usecase] compute failed region=%q err=%v", spec.Region, err)
		return entities.Breakdown{}, err
	}
	return breakdown, nil
}

func (u *QuoteUseCase) RequestQuote(ctx context.Context, spec entities.JobSpec) (entities.Breakdown, entities.DeliveryResult, error) {
	breakdown, err := u.Calculate(ctx, spec)
	if err != nil {
		return entities.Breakdown{}, entities.DeliveryResult{}, err
	}
	if u.delivery == nil {
		return entities.Breakdown{}, entities.DeliveryResult{}, errors.New("delivery usecase not configured")
	}

	result, err := u.delivery.DeliverQuote(ctx, spec, breakdown)
	if err != nil {
		return breakdown, result, err
	}
	return breakdown, result, nil
}
