package response

import (
	"muebleria_xpto/internal/domain/entities"
	"time"
)

type VariantResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PriceDelta float64   `json:"price_delta"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromVariant(v entities.Variant) VariantResponse {
	return VariantResponse{
		ID:         v.ID,
		Name:       v.Name,
		PriceDelta: v.PriceDelta,
		CreatedAt:  v.CreatedAt,
	}
}

func FromVariants(vs []entities.Variant) []VariantResponse {
	out := make([]VariantResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVariant(v))
	}
	return out
}
