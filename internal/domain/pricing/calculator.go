package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"schilderpro/internal/domain/entities"
)

// ComputeBreakdown prices a job spec against a rate table.
//
// Rules:
//   - Items are walked in caller order; disabled items and items with a
//     missing or non-positive quantity are skipped.
//   - Each kept line shows subtotal = round-half-up(quantity x unit price) to
//     cents, but the grand total sums the UNROUNDED products and rounds once
//     at the end. Rounding per line first compounds cent drift on larger
//     jobs, which is exactly the bug the old production path had.
//   - A kind missing from the table aborts the whole computation.
//   - Zero enabled items is a valid input: empty lines, total 0.
//
// Pure function: identical inputs yield identical breakdowns.
func ComputeBreakdown(spec entities.JobSpec, table RateTable) (entities.Breakdown, error) {
	lines := make([]entities.PricedLine, 0, len(spec.Items))
	total := decimal.Zero

	for _, item := range spec.Items {
		if !item.Enabled || !item.Quantity.IsPositive() {
			continue
		}

		up, err := table.UnitPriceFor(item.Kind)
		if err != nil {
			return entities.Breakdown{}, fmt.Errorf("pricing %q: %w", item.Kind, err)
		}

		raw := item.Quantity.Mul(up.Amount)
		total = total.Add(raw)

		lines = append(lines, entities.PricedLine{
			Kind:      item.Kind,
			Quantity:  item.Quantity,
			UnitPrice: up,
			Subtotal:  raw.Round(2),
			Color:     item.Color,
		})
	}

	return entities.Breakdown{
		Lines:        lines,
		Total:        total.Round(2),
		TableName:    table.Name,
		TableVersion: table.Version,
	}, nil
}
