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
	ErrVariantNotFound     = errors.New("variant not found")
	ErrInvalidVariantID    = errors.New("invalid variant id")
	ErrInvalidVariantInput = errors.New("invalid variant input")
	ErrVariantNameTaken    = errors.New("variant name already taken")
)

// IVariantUseCase exposes variant operations. Variants are immutable
// after creation; there is no update or delete.

type IVariantUseCase interface {
	Create(ctx context.Context, name string, priceDelta float64) (entities.Variant, error)
	GetByID(ctx context.Context, id string) (entities.Variant, error)
	List(ctx context.Context) ([]entities.Variant, error)
}

type VariantUseCase struct {
	repo interfaces.IVariantRepository
}

var _ IVariantUseCase = (*VariantUseCase)(nil)

func NewVariantUseCase(repo interfaces.IVariantRepository) *VariantUseCase {
	return &VariantUseCase{repo: repo}
}

func (u *VariantUseCase) Create(ctx context.Context, name string, priceDelta float64) (entities.Variant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Variant{}, ErrInvalidVariantInput
	}
	if priceDelta < 0 {
		return entities.Variant{}, ErrInvalidVariantInput
	}

	// Fast pre-check; the repository enforces uniqueness for real with a
	// conditional put on a name marker.
	if existing, err := u.repo.GetByName(ctx, name); err != nil {
		return entities.Variant{}, err
	} else if existing.ID != "" {
		return entities.Variant{}, ErrVariantNameTaken
	}

	v := entities.Variant{
		ID:         uuid.NewString(),
		Name:       name,
		PriceDelta: priceDelta,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, v)
	if err != nil {
		return entities.Variant{}, err
	}
	if created.ID == "" {
		return entities.Variant{}, ErrVariantNameTaken
	}
	return created, nil
}

func (u *VariantUseCase) GetByID(ctx context.Context, id string) (entities.Variant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Variant{}, ErrInvalidVariantID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Variant{}, err
	}
	if v.ID == "" {
		return entities.Variant{}, ErrVariantNotFound
	}
	return v, nil
}

func (u *VariantUseCase) List(ctx context.Context) ([]entities.Variant, error) {
	return u.repo.List(ctx)
}
