package pricing

import (
	"errors"
	"testing"

	"schilderpro/internal/domain/entities"
)

func TestSelectRateTable_KnownRegions(t *testing.T) {
	for _, region := range []string{"amsterdam", "rotterdam", "utrecht", DefaultRegion} {
		table, err := SelectRateTable(region)
		if err != nil {
			t.Fatalf("region %q: unexpected error: %v", region, err)
		}
		if table.Name != region {
			t.Fatalf("region %q resolved to table %q", region, table.Name)
		}
	}
}

func TestSelectRateTable_NormalizesInput(t *testing.T) {
	table, err := SelectRateTable("  Amsterdam ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Name != "amsterdam" {
		t.Fatalf("expected amsterdam, got %q", table.Name)
	}
}

func TestSelectRateTable_FallsBackToDefault(t *testing.T) {
	for _, region := range []string{"", "groningen", "brussel"} {
		table, err := SelectRateTable(region)
		if err != nil {
			t.Fatalf("region %q: unexpected error: %v", region, err)
		}
		if table.Name != DefaultRegion {
			t.Fatalf("region %q: expected default table, got %q", region, table.Name)
		}
	}
}

func TestRateTables_CoverEveryKind(t *testing.T) {
	// Every kind a JobSpec can reference must resolve in every table, and
	// every price must be non-negative.
	for name, table := range regionTables {
		for _, kind := range entities.AllLineItemKinds {
			up, err := table.UnitPriceFor(kind)
			if err != nil {
				t.Fatalf("table %q: kind %q unpriced: %v", name, kind, err)
			}
			if up.Amount.IsNegative() {
				t.Fatalf("table %q: kind %q has negative price %s", name, kind, up.Amount)
			}
		}
	}
}

func TestUnitPriceFor_UnknownKind(t *testing.T) {
	table := RateTable{Name: "empty", Version: "test-1"}
	_, err := table.UnitPriceFor(entities.LineItemWalls)
	if !errors.Is(err, ErrUnknownLineItemKind) {
		t.Fatalf("expected ErrUnknownLineItemKind, got %v", err)
	}
}
