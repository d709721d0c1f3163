package interfaces

import (
	"context"
	"muebleria_xpto/internal/domain/entities"
)

// IFurnitureRepository abstracts DynamoDB persistence for FurnitureItem.
//
// Lookups return the zero value (empty ID) when nothing matches; callers
// translate that into their own not-found errors. Stock decrements are
// not exposed here: they only happen inside the sale-confirmation
// transaction owned by IQuotationRepository.

type IFurnitureRepository interface {
	Create(ctx context.Context, item entities.FurnitureItem) (entities.FurnitureItem, error)
	GetByID(ctx context.Context, id string) (entities.FurnitureItem, error)
	ListActive(ctx context.Context) ([]entities.FurnitureItem, error)
	Update(ctx context.Context, item entities.FurnitureItem) (entities.FurnitureItem, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.FurnitureStatus) (entities.FurnitureItem, error)
}
