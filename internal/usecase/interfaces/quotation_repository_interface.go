package interfaces

import (
	"context"
	"muebleria_xpto/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// Confirm applies every line's stock decrement and the PENDING->CONFIRMED
// flip as a single all-or-nothing transaction. Each decrement is guarded
// by a store-level condition (item active, stock >= quantity) and the
// flip by a status condition, so concurrent confirmations cannot oversell
// or double-confirm. A lost race returns the zero value with a nil error.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	List(ctx context.Context) ([]entities.Quotation, error)
	Confirm(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
}
