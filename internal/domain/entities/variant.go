package entities

import "time"

// Variant is a finish/option modifier applied on top of an item's base
// price. Variants are immutable after creation and their name is unique.
//
// Storage model (DynamoDB):
//   - PK: id
//   - uniqueness marker item: name#<lowercased name>

type Variant struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PriceDelta float64   `json:"price_delta"`
	CreatedAt  time.Time `json:"created_at"`
}
