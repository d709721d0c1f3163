package usecase

import "muebleria_xpto/internal/domain/entities"

// UnitPrice is the quoted price for one unit of an item with a variant
// applied. Pure; negative inputs are rejected by catalog validation
// before they can reach this point.
func UnitPrice(item entities.FurnitureItem, v entities.Variant) float64 {
	return item.BasePrice + v.PriceDelta
}
