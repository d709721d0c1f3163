package entities

import (
	"fmt"
	"strings"
	"time"
)

// QuotationStatus is the quotation lifecycle state.
//
// PENDING --confirm--> CONFIRMED. CONFIRMED is terminal; a second
// confirmation attempt is an error, never a no-op.

type QuotationStatus string

const (
	QuotationStatusPending   QuotationStatus = "PENDING"
	QuotationStatusConfirmed QuotationStatus = "CONFIRMED"
)

func ParseQuotationStatus(s string) (QuotationStatus, error) {
	switch QuotationStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case QuotationStatusPending:
		return QuotationStatusPending, nil
	case QuotationStatusConfirmed:
		return QuotationStatusConfirmed, nil
	}
	return "", fmt.Errorf("unknown quotation status %q", s)
}

// QuotationLine is one quoted position. The unit price and the item and
// variant names are snapshots taken at quotation time; later catalog
// edits must not change a quote retroactively.

type QuotationLine struct {
	FurnitureID   string  `json:"furniture_id"`
	FurnitureName string  `json:"furniture_name"`
	VariantID     string  `json:"variant_id"`
	VariantName   string  `json:"variant_name"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
}

// Subtotal is derived, never stored.
func (l QuotationLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Quotation is a priced, not-yet-fulfilled sale request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Lines live inside the quotation item; they are created and removed
//     with their parent and are never addressable on their own.
//
// Total is fixed at creation time (sum of line subtotals) and is never
// recomputed.

type Quotation struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Total  float64         `json:"total"`
	Status QuotationStatus `json:"status"`
	Lines  []QuotationLine `json:"lines"`
}
