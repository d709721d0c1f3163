package response

import (
	"muebleria_xpto/internal/domain/entities"
	"time"
)

type QuotationLineResponse struct {
	FurnitureName string  `json:"furniture_name"`
	VariantName   string  `json:"variant_name"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	Subtotal      float64 `json:"subtotal"`
}

type QuotationResponse struct {
	ID     string                  `json:"id"`
	Date   time.Time               `json:"date"`
	Total  float64                 `json:"total"`
	Status string                  `json:"status"`
	Lines  []QuotationLineResponse `json:"lines"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	lines := make([]QuotationLineResponse, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, QuotationLineResponse{
			FurnitureName: l.FurnitureName,
			VariantName:   l.VariantName,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			Subtotal:      l.Subtotal(),
		})
	}
	return QuotationResponse{
		ID:     q.ID,
		Date:   q.Date,
		Total:  q.Total,
		Status: string(q.Status),
		Lines:  lines,
	}
}

func FromQuotations(qs []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuotation(q))
	}
	return out
}
