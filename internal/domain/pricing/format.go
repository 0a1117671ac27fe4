package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"schilderpro/internal/domain/entities"
)

// FormattedLine is one breakdown row rendered for display, suitable for an
// HTML table cell-per-cell embedding.
type FormattedLine struct {
	Label         string `json:"label"`
	QuantityLabel string `json:"quantity_label"`
	SubtotalLabel string `json:"subtotal_label"`
}

// Display copy is Dutch; the service targets the Dutch market.
var kindLabels = map[entities.LineItemKind]string{
	entities.LineItemWalls:         "Muren",
	entities.LineItemCeiling:       "Plafonds",
	entities.LineItemBaseboard:     "Plinten",
	entities.LineItemMolding:       "Sierlijsten",
	entities.LineItemInteriorFrame: "Binnenkozijnen",
	entities.LineItemInteriorDoor:  "Binnendeuren",
	entities.LineItemDoorFrame:     "Deurkozijnen",
	entities.LineItemExteriorFrame: "Buitenkozijnen",
	entities.LineItemExteriorDoor:  "Buitendeuren",
}

var unitSuffixes = map[entities.Unit]string{
	entities.UnitPerM2:      "m²",
	entities.UnitPerLinearM: "m",
	entities.UnitPerPiece:   "stuks",
}

// FormatEUR renders an amount in Dutch convention: "€ 1.234,56".
//
// It formats the decimal's cent-exact string directly (dot grouping, decimal
// comma) so both render paths stay bit-identical with the calculator; going
// through a float-based locale printer would reintroduce binary drift.
func FormatEUR(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, decPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	result := "€ " + grouped.String() + "," + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// KindLabel returns the display label for a kind, falling back to the raw
// kind string for any kind added to a table before this map.
func KindLabel(kind entities.LineItemKind) string {
	if l, ok := kindLabels[kind]; ok {
		return l
	}
	return string(kind)
}

func quantityLabel(line entities.PricedLine) string {
	q := line.Quantity.String()
	if suffix, ok := unitSuffixes[line.UnitPrice.Unit]; ok {
		return q + " " + suffix
	}
	return q
}

// FormatStructured renders a breakdown as display rows, preserving line
// order. Pure; no side effects.
func FormatStructured(b entities.Breakdown) []FormattedLine {
	out := make([]FormattedLine, 0, len(b.Lines))
	for _, line := range b.Lines {
		label := KindLabel(line.Kind)
		if line.Color != "" {
			label = fmt.Sprintf("%s (%s)", label, line.Color)
		}
		out = append(out, FormattedLine{
			Label:         label,
			QuantityLabel: quantityLabel(line),
			SubtotalLabel: FormatEUR(line.Subtotal),
		})
	}
	return out
}

// FormatPlainText renders a breakdown as the plain-text email body block.
//
// Built on the same FormattedLine rows as the HTML path, so the two
// renderings can never disagree on a number.
func FormatPlainText(b entities.Breakdown) string {
	var sb strings.Builder
	for _, line := range FormatStructured(b) {
		fmt.Fprintf(&sb, "- %s: %s = %s\n", line.Label, line.QuantityLabel, line.SubtotalLabel)
	}
	fmt.Fprintf(&sb, "Totaal (incl. btw): %s\n", FormatEUR(b.Total))
	return sb.String()
}
