package response

import (
	"testing"
	"time"

	"muebleria_xpto/internal/domain/entities"
)

func TestFromQuotation(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quotation{
		ID:     "q-1",
		Date:   now,
		Total:  55500,
		Status: entities.QuotationStatusPending,
		Lines: []entities.QuotationLine{
			{FurnitureID: "f-1", FurnitureName: "Silla de Roble", VariantID: "v-1", VariantName: "Normal", Quantity: 2, UnitPrice: 15000},
			{FurnitureID: "f-1", FurnitureName: "Silla de Roble", VariantID: "v-2", VariantName: "Barniz Premium", Quantity: 1, UnitPrice: 18500},
		},
	}

	res := FromQuotation(q)
	if res.ID != "q-1" || res.Total != 55500 || res.Status != "PENDING" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
	if len(res.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(res.Lines))
	}
	if res.Lines[0].Subtotal != 30000 || res.Lines[1].Subtotal != 18500 {
		t.Fatalf("unexpected subtotals: %+v", res.Lines)
	}
	if res.Lines[0].FurnitureName != "Silla de Roble" || res.Lines[1].VariantName != "Barniz Premium" {
		t.Fatalf("unexpected snapshot names: %+v", res.Lines)
	}
}

func TestFromQuotations(t *testing.T) {
	out := FromQuotations([]entities.Quotation{{ID: "q-1"}, {ID: "q-2"}})
	if len(out) != 2 || out[0].ID != "q-1" || out[1].ID != "q-2" {
		t.Fatalf("unexpected result: %+v", out)
	}

	if empty := FromQuotations(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", empty)
	}
}
