package response

import (
	"muebleria_xpto/internal/domain/entities"
	"time"
)

type FurnitureItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Material  string    `json:"material"`
	BasePrice float64   `json:"base_price"`
	Stock     int       `json:"stock"`
	Size      string    `json:"size"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromFurnitureItem(item entities.FurnitureItem) FurnitureItemResponse {
	return FurnitureItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Type:      item.Type,
		Material:  item.Material,
		BasePrice: item.BasePrice,
		Stock:     item.Stock,
		Size:      string(item.Size),
		Status:    string(item.Status),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func FromFurnitureItems(items []entities.FurnitureItem) []FurnitureItemResponse {
	out := make([]FurnitureItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromFurnitureItem(item))
	}
	return out
}
