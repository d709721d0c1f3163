package entities

import "testing"

func TestParseFurnitureStatus(t *testing.T) {
	if s, err := ParseFurnitureStatus(" active "); err != nil || s != FurnitureStatusActive {
		t.Fatalf("expected ACTIVE, got %q err=%v", s, err)
	}
	if s, err := ParseFurnitureStatus("INACTIVE"); err != nil || s != FurnitureStatusInactive {
		t.Fatalf("expected INACTIVE, got %q err=%v", s, err)
	}
	if _, err := ParseFurnitureStatus("RETIRED"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestParseSizeClass(t *testing.T) {
	for _, in := range []string{"small", "MEDIUM", " large "} {
		if _, err := ParseSizeClass(in); err != nil {
			t.Fatalf("unexpected error for %q: %v", in, err)
		}
	}
	if _, err := ParseSizeClass("HUGE"); err == nil {
		t.Fatalf("expected error for unknown size")
	}
}

func TestParseQuotationStatus(t *testing.T) {
	if s, err := ParseQuotationStatus("pending"); err != nil || s != QuotationStatusPending {
		t.Fatalf("expected PENDING, got %q err=%v", s, err)
	}
	if s, err := ParseQuotationStatus("CONFIRMED"); err != nil || s != QuotationStatusConfirmed {
		t.Fatalf("expected CONFIRMED, got %q err=%v", s, err)
	}
	if _, err := ParseQuotationStatus("CANCELLED"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestQuotationLineSubtotal(t *testing.T) {
	l := QuotationLine{Quantity: 3, UnitPrice: 18500}
	if got := l.Subtotal(); got != 55500 {
		t.Fatalf("expected 55500, got %v", got)
	}
}
