// Package pricing is the single source of truth for quote prices.
//
// Both presentation surfaces (the production quote pipeline and the internal
// calculate endpoint used for rate testing) go through this package; the old
// site carried a second, diverging copy of the formula in its admin tool.
package pricing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"schilderpro/internal/domain/entities"
)

var (
	ErrUnknownLineItemKind = errors.New("unknown line item kind")
	ErrUnknownRegion       = errors.New("unknown region")
)

// RateTable maps line-item kinds to published unit prices.
//
// Tables are compiled-in, versioned configuration: a price change ships as a
// new version, there is no runtime mutation API. All amounts are
// VAT-inclusive consumer prices; VATRate is retained so a future VAT split is
// a table/formatter change, not an engine change.
type RateTable struct {
	Name    string
	Version string
	VATRate decimal.Decimal
	Prices  map[entities.LineItemKind]entities.UnitPrice
}

// UnitPriceFor resolves the unit price for a kind.
//
// A missing kind is a config/caller bug and is fatal to the whole request;
// it must never silently price as zero.
func (t RateTable) UnitPriceFor(kind entities.LineItemKind) (entities.UnitPrice, error) {
	up, ok := t.Prices[kind]
	if !ok {
		return entities.UnitPrice{}, ErrUnknownLineItemKind
	}
	return up, nil
}

// DefaultRegion is the national fallback table used for any region without a
// dedicated table of its own.
const DefaultRegion = "landelijk"

func eur(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func m2(s string) entities.UnitPrice {
	return entities.UnitPrice{Amount: eur(s), Unit: entities.UnitPerM2}
}

func lm(s string) entities.UnitPrice {
	return entities.UnitPrice{Amount: eur(s), Unit: entities.UnitPerLinearM}
}

func piece(s string) entities.UnitPrice {
	return entities.UnitPrice{Amount: eur(s), Unit: entities.UnitPerPiece}
}

var vat21 = eur("0.21")

var defaultTable = RateTable{
	Name:    DefaultRegion,
	Version: "2026-01",
	VATRate: vat21,
	Prices: map[entities.LineItemKind]entities.UnitPrice{
		entities.LineItemWalls:         m2("12.50"),
		entities.LineItemCeiling:       m2("14.00"),
		entities.LineItemBaseboard:     lm("7.50"),
		entities.LineItemMolding:       lm("9.00"),
		entities.LineItemInteriorFrame: piece("55.00"),
		entities.LineItemInteriorDoor:  piece("95.00"),
		entities.LineItemDoorFrame:     piece("65.00"),
		entities.LineItemExteriorFrame: piece("85.00"),
		entities.LineItemExteriorDoor:  piece("140.00"),
	},
}

// Big-city tables carry a surcharge over the national rates.
var regionTables = map[string]RateTable{
	DefaultRegion: defaultTable,
	"amsterdam": {
		Name:    "amsterdam",
		Version: "2026-01",
		VATRate: vat21,
		Prices: map[entities.LineItemKind]entities.UnitPrice{
			entities.LineItemWalls:         m2("14.50"),
			entities.LineItemCeiling:       m2("16.00"),
			entities.LineItemBaseboard:     lm("8.75"),
			entities.LineItemMolding:       lm("10.50"),
			entities.LineItemInteriorFrame: piece("62.50"),
			entities.LineItemInteriorDoor:  piece("110.00"),
			entities.LineItemDoorFrame:     piece("75.00"),
			entities.LineItemExteriorFrame: piece("97.50"),
			entities.LineItemExteriorDoor:  piece("160.00"),
		},
	},
	"rotterdam": {
		Name:    "rotterdam",
		Version: "2026-01",
		VATRate: vat21,
		Prices: map[entities.LineItemKind]entities.UnitPrice{
			entities.LineItemWalls:         m2("13.50"),
			entities.LineItemCeiling:       m2("15.00"),
			entities.LineItemBaseboard:     lm("8.00"),
			entities.LineItemMolding:       lm("9.75"),
			entities.LineItemInteriorFrame: piece("58.50"),
			entities.LineItemInteriorDoor:  piece("102.00"),
			entities.LineItemDoorFrame:     piece("70.00"),
			entities.LineItemExteriorFrame: piece("91.00"),
			entities.LineItemExteriorDoor:  piece("150.00"),
		},
	},
	"utrecht": {
		Name:    "utrecht",
		Version: "2026-01",
		VATRate: vat21,
		Prices: map[entities.LineItemKind]entities.UnitPrice{
			entities.LineItemWalls:         m2("13.75"),
			entities.LineItemCeiling:       m2("15.25"),
			entities.LineItemBaseboard:     lm("8.25"),
			entities.LineItemMolding:       lm("10.00"),
			entities.LineItemInteriorFrame: piece("60.00"),
			entities.LineItemInteriorDoor:  piece("105.00"),
			entities.LineItemDoorFrame:     piece("72.00"),
			entities.LineItemExteriorFrame: piece("93.50"),
			entities.LineItemExteriorDoor:  piece("155.00"),
		},
	},
}

// SelectRateTable resolves the rate table for a region.
//
// Selection is total: any region without a dedicated table falls back to the
// national default. ErrUnknownRegion can only fire if a build ships without
// the default table, which the tests guard against.
func SelectRateTable(region string) (RateTable, error) {
	key := strings.ToLower(strings.TrimSpace(region))
	if t, ok := regionTables[key]; ok {
		return t, nil
	}
	t, ok := regionTables[DefaultRegion]
	if !ok {
		return RateTable{}, ErrUnknownRegion
	}
	return t, nil
}

// Regions lists every region with a dedicated rate table.
func Regions() []string {
	out := make([]string, 0, len(regionTables))
	for name := range regionTables {
		out = append(out, name)
	}
	return out
}
