package pricing

import (
	"strings"
	"testing"

	"schilderpro/internal/domain/entities"
)

func TestFormatEUR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "€ 0,00"},
		{"312.5", "€ 312,50"},
		{"1234.56", "€ 1.234,56"},
		{"1234567.8", "€ 1.234.567,80"},
		{"-99.95", "-€ 99,95"},
		{"0.005", "€ 0,01"},
	}
	for _, c := range cases {
		if got := FormatEUR(dec(t, c.in)); got != c.want {
			t.Fatalf("FormatEUR(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatStructured(t *testing.T) {
	spec := entities.JobSpec{
		Items: []entities.LineItem{
			{Kind: entities.LineItemWalls, Enabled: true, Quantity: dec(t, "20"), Color: "RAL 9016"},
			{Kind: entities.LineItemBaseboard, Enabled: true, Quantity: dec(t, "15")},
		},
	}
	b, err := ComputeBreakdown(spec, testTable(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := FormatStructured(b)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Label != "Muren (RAL 9016)" {
		t.Fatalf("unexpected label: %q", rows[0].Label)
	}
	if rows[0].QuantityLabel != "20 m²" {
		t.Fatalf("unexpected quantity label: %q", rows[0].QuantityLabel)
	}
	if rows[0].SubtotalLabel != "€ 250,00" {
		t.Fatalf("unexpected subtotal label: %q", rows[0].SubtotalLabel)
	}
	if rows[1].Label != "Plinten" || rows[1].QuantityLabel != "15 m" || rows[1].SubtotalLabel != "€ 112,50" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestFormatPlainText_MatchesStructuredTotals(t *testing.T) {
	// Both render paths must show the exact same numbers for the same
	// breakdown; the old site formatted the two emails independently.
	spec := entities.JobSpec{
		Items: []entities.LineItem{
			{Kind: entities.LineItemWalls, Enabled: true, Quantity: dec(t, "33.3")},
			{Kind: entities.LineItemCeiling, Enabled: true, Quantity: dec(t, "12.8")},
			{Kind: entities.LineItemBaseboard, Enabled: true, Quantity: dec(t, "7")},
		},
	}
	b, err := ComputeBreakdown(spec, testTable(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := FormatPlainText(b)
	for _, row := range FormatStructured(b) {
		if !strings.Contains(text, row.SubtotalLabel) {
			t.Fatalf("plain text misses subtotal %q:\n%s", row.SubtotalLabel, text)
		}
	}
	if !strings.Contains(text, FormatEUR(b.Total)) {
		t.Fatalf("plain text misses total %q:\n%s", FormatEUR(b.Total), text)
	}
}

func TestFormatPlainText_EmptyBreakdown(t *testing.T) {
	b, err := ComputeBreakdown(entities.JobSpec{}, testTable(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := FormatPlainText(b)
	if !strings.Contains(text, "€ 0,00") {
		t.Fatalf("expected zero total in %q", text)
	}
}
