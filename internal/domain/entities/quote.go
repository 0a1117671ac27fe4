package entities

import "github.com/shopspring/decimal"

// LineItemKind identifies one priceable component of a painting job.
//
// Domain notes:
//   - Kinds are a closed set; a JobSpec referencing a kind that is missing
//     from the selected rate table is a caller/config bug, never a user error.
//   - The old site built lookup keys by string concatenation at runtime; the
//     enum makes a missing combination a construction-time error instead.

type LineItemKind string

const (
	LineItemWalls         LineItemKind = "walls"
	LineItemCeiling       LineItemKind = "ceiling"
	LineItemBaseboard     LineItemKind = "baseboard"
	LineItemMolding       LineItemKind = "molding"
	LineItemInteriorFrame LineItemKind = "interior_frame"
	LineItemInteriorDoor  LineItemKind = "interior_door"
	LineItemDoorFrame     LineItemKind = "door_frame"
	LineItemExteriorFrame LineItemKind = "exterior_frame"
	LineItemExteriorDoor  LineItemKind = "exterior_door"
)

// AllLineItemKinds lists every supported kind, in display order.
var AllLineItemKinds = []LineItemKind{
	LineItemWalls,
	LineItemCeiling,
	LineItemBaseboard,
	LineItemMolding,
	LineItemInteriorFrame,
	LineItemInteriorDoor,
	LineItemDoorFrame,
	LineItemExteriorFrame,
	LineItemExteriorDoor,
}

// IsValid checks if the kind is one of the defined constants.
func (k LineItemKind) IsValid() bool {
	switch k {
	case LineItemWalls, LineItemCeiling, LineItemBaseboard, LineItemMolding,
		LineItemInteriorFrame, LineItemInteriorDoor, LineItemDoorFrame,
		LineItemExteriorFrame, LineItemExteriorDoor:
		return true
	}
	return false
}

// Unit is the pricing unit a kind is quoted in.

type Unit string

const (
	UnitPerM2      Unit = "per_m2"
	UnitPerLinearM Unit = "per_linear_m"
	UnitPerPiece   Unit = "per_unit"
)

// UnitPrice is the published price for one unit of a line-item kind.
type UnitPrice struct {
	Amount decimal.Decimal `json:"amount"`
	Unit   Unit            `json:"unit"`
}

// ProjectType scopes a job to interior work, exterior work, or both.

type ProjectType string

const (
	ProjectInterior ProjectType = "interior"
	ProjectExterior ProjectType = "exterior"
	ProjectBoth     ProjectType = "both"
)

// Contact is the customer's contact information on a quote request.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// LineItem is one requested component of a painting job.
//
// A line contributes to the total only if Enabled is true and Quantity > 0.
// Color is free text chosen by the customer; it is display-only and never
// affects pricing.
type LineItem struct {
	Kind     LineItemKind    `json:"kind"`
	Enabled  bool            `json:"enabled"`
	Quantity decimal.Decimal `json:"quantity"`
	Color    string          `json:"color,omitempty"`
}

// JobSpec is the immutable description of a requested painting job.
//
// It is built once per incoming request from the submitted form and never
// persisted; the calculator and delivery service only ever read it.
type JobSpec struct {
	Contact     Contact     `json:"contact"`
	ProjectType ProjectType `json:"project_type"`
	Region      string      `json:"region,omitempty"`
	Items       []LineItem  `json:"items"`
	PhotoURLs   []string    `json:"photo_urls,omitempty"`
	Message     string      `json:"message,omitempty"`
}

// PricedLine is one priced row of a breakdown.
//
// Subtotal is the cent-rounded quantity x unit price for display; the
// breakdown total is NOT the sum of these rounded values (see Breakdown).
type PricedLine struct {
	Kind      LineItemKind    `json:"kind"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice UnitPrice       `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Color     string          `json:"color,omitempty"`
}

// Breakdown is the computed, itemized price for a JobSpec.
//
// Invariants:
//   - Lines preserve the input order of the JobSpec items.
//   - Total is the decimal sum of the unrounded quantity x unit-price
//     products, rounded to cents exactly once at the end. Rounding each
//     line before summing drifts by cents on larger jobs.
//   - Immutable once computed.
type Breakdown struct {
	Lines        []PricedLine    `json:"lines"`
	Total        decimal.Decimal `json:"total"`
	TableName    string          `json:"table_name"`
	TableVersion string          `json:"table_version"`
}
