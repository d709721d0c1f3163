package interfaces

import (
	"context"
	"muebleria_xpto/internal/domain/entities"
)

// IVariantRepository abstracts DynamoDB persistence for Variant.
//
// Create must enforce name uniqueness at the store level and return the
// zero value when the name is already taken.

type IVariantRepository interface {
	Create(ctx context.Context, v entities.Variant) (entities.Variant, error)
	GetByID(ctx context.Context, id string) (entities.Variant, error)
	GetByName(ctx context.Context, name string) (entities.Variant, error)
	List(ctx context.Context) ([]entities.Variant, error)
}
