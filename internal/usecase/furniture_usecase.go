package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"muebleria_xpto/internal/domain/entities"
	"muebleria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFurnitureNotFound      = errors.New("furniture item not found")
	ErrFurnitureUnavailable   = errors.New("furniture item not available")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrInvalidFurnitureID     = errors.New("invalid furniture item id")
	ErrInvalidFurnitureInput  = errors.New("invalid furniture item input")
	ErrFurnitureInactive      = errors.New("furniture item is inactive")
	ErrFurnitureAlreadyActive = errors.New("furniture item already active")
)

// CreateFurnitureInput carries the catalog fields for item creation and
// full update. Status is not settable here: new items are always ACTIVE
// and status changes go through Activate/Deactivate.

type CreateFurnitureInput struct {
	Name      string
	Type      string
	Material  string
	BasePrice float64
	Stock     int
	Size      entities.SizeClass
}

// PatchFurnitureInput carries optional fields for partial update; nil
// means "leave as is".

type PatchFurnitureInput struct {
	Name      *string
	Type      *string
	Material  *string
	BasePrice *float64
	Stock     *int
	Size      *entities.SizeClass
}

// IFurnitureUseCase exposes catalog operations for furniture items.

type IFurnitureUseCase interface {
	Create(ctx context.Context, in CreateFurnitureInput) (entities.FurnitureItem, error)
	GetByID(ctx context.Context, id string) (entities.FurnitureItem, error)
	ListActive(ctx context.Context) ([]entities.FurnitureItem, error)
	Update(ctx context.Context, id string, in CreateFurnitureInput) (entities.FurnitureItem, error)
	Patch(ctx context.Context, id string, in PatchFurnitureInput) (entities.FurnitureItem, error)
	Activate(ctx context.Context, id string) (entities.FurnitureItem, error)
	Deactivate(ctx context.Context, id string) (entities.FurnitureItem, error)
}

type FurnitureUseCase struct {
	repo interfaces.IFurnitureRepository
}

var _ IFurnitureUseCase = (*FurnitureUseCase)(nil)

func NewFurnitureUseCase(repo interfaces.IFurnitureRepository) *FurnitureUseCase {
	return &FurnitureUseCase{repo: repo}
}

func (in CreateFurnitureInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Type) == "" || strings.TrimSpace(in.Material) == "" {
		return ErrInvalidFurnitureInput
	}
	if in.BasePrice < 0 || in.Stock < 0 {
		return ErrInvalidFurnitureInput
	}
	if _, err := entities.ParseSizeClass(string(in.Size)); err != nil {
		return ErrInvalidFurnitureInput
	}
	return nil
}

func (u *FurnitureUseCase) Create(ctx context.Context, in CreateFurnitureInput) (entities.FurnitureItem, error) {
	if err := in.validate(); err != nil {
		return entities.FurnitureItem{}, err
	}

	now := time.Now().UTC()
	item := entities.FurnitureItem{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Type:      strings.TrimSpace(in.Type),
		Material:  strings.TrimSpace(in.Material),
		BasePrice: in.BasePrice,
		Stock:     in.Stock,
		Size:      in.Size,
		Status:    entities.FurnitureStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, item)
}

func (u *FurnitureUseCase) GetByID(ctx context.Context, id string) (entities.FurnitureItem, error) {
	item, err := u.load(ctx, id)
	if err != nil {
		return entities.FurnitureItem{}, err
	}
	return item, nil
}

func (u *FurnitureUseCase) ListActive(ctx context.Context) ([]entities.FurnitureItem, error) {
	return u.repo.ListActive(ctx)
}

// Update replaces every editable field. Inactive items cannot be edited;
// they have to be activated first.
func (u *FurnitureUseCase) Update(ctx context.Context, id string, in CreateFurnitureInput) (entities.FurnitureItem, error) {
	if err := in.validate(); err != nil {
		return entities.FurnitureItem{}, err
	}

	item, err := u.load(ctx, id)
	if err != nil {
		return entities.FurnitureItem{}, err
	}
	if item.Status == entities.FurnitureStatusInactive {
		return entities.FurnitureItem{}, ErrFurnitureInactive
	}

	item.Name = strings.TrimSpace(in.Name)
	item.Type = strings.TrimSpace(in.Type)
	item.Material = strings.TrimSpace(in.Material)
	item.BasePrice = in.BasePrice
	item.Stock = in.Stock
	item.Size = in.Size
	item.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, item)
}

func (u *FurnitureUseCase) Patch(ctx context.Context, id string, in PatchFurnitureInput) (entities.FurnitureItem, error) {
	item, err := u.load(ctx, id)
	if err != nil {
		return entities.FurnitureItem{}, err
	}
	if item.Status == entities.FurnitureStatusInactive {
		return entities.FurnitureItem{}, ErrFurnitureInactive
	}

	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		item.Type = strings.TrimSpace(*in.Type)
	}
	if in.Material != nil {
		item.Material = strings.TrimSpace(*in.Material)
	}
	if in.BasePrice != nil {
		item.BasePrice = *in.BasePrice
	}
	if in.Stock != nil {
		item.Stock = *in.Stock
	}
	if in.Size != nil {
		item.Size = *in.Size
	}

	if item.Name == "" || item.Type == "" || item.Material == "" || item.BasePrice < 0 || item.Stock < 0 {
		return entities.FurnitureItem{}, ErrInvalidFurnitureInput
	}
	if _, err := entities.ParseSizeClass(string(item.Size)); err != nil {
		return entities.FurnitureItem{}, ErrInvalidFurnitureInput
	}

	item.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, item)
}

func (u *FurnitureUseCase) Activate(ctx context.Context, id string) (entities.FurnitureItem, error) {
	item, err := u.load(ctx, id)
	if err != nil {
		return entities.FurnitureItem{}, err
	}
	if item.Status == entities.FurnitureStatusActive {
		return entities.FurnitureItem{}, ErrFurnitureAlreadyActive
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, entities.FurnitureStatusActive)
	if err != nil {
		return entities.FurnitureItem{}, err
	}
	if updated.ID == "" {
		return entities.FurnitureItem{}, ErrFurnitureNotFound
	}
	return updated, nil
}

func (u *FurnitureUseCase) Deactivate(ctx context.Context, id string) (entities.FurnitureItem, error) {
	if _, err := u.load(ctx, id); err != nil {
		return entities.FurnitureItem{}, err
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, entities.FurnitureStatusInactive)
	if err != nil {
		return entities.FurnitureItem{}, err
	}
	if updated.ID == "" {
		return entities.FurnitureItem{}, ErrFurnitureNotFound
	}
	return updated, nil
}

func (u *FurnitureUseCase) load(ctx context.Context, id string) (entities.FurnitureItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FurnitureItem{}, ErrInvalidFurnitureID
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.FurnitureItem{}, err
	}
	if item.ID == "" {
		return entities.FurnitureItem{}, ErrFurnitureNotFound
	}
	return item, nil
}
