package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"muebleria_xpto/internal/domain/entities"
	"muebleria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound         = errors.New("quotation not found")
	ErrQuotationAlreadyConfirmed = errors.New("quotation already confirmed")
	ErrInvalidQuotationID        = errors.New("invalid quotation id")
	ErrEmptyQuotationLines       = errors.New("quotation has no lines")
	ErrInvalidQuantity           = errors.New("invalid quantity")
	ErrConfirmationConflict      = errors.New("confirmation conflict")
)

// QuotationLineInput is one requested (item, variant, quantity) tuple.

type QuotationLineInput struct {
	FurnitureID string
	VariantID   string
	Quantity    int
}

// IQuotationUseCase exposes the quotation-to-sale workflow.
//
// CreateQuotation validates and prices every requested line against the
// current catalog; ConfirmSale re-validates against the catalog as it is
// at confirmation time, since stock and availability drift between the
// two phases.

type IQuotationUseCase interface {
	CreateQuotation(ctx context.Context, lines []QuotationLineInput) (entities.Quotation, error)
	ConfirmSale(ctx context.Context, quotationID string) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	List(ctx context.Context) ([]entities.Quotation, error)
}

type QuotationUseCase struct {
	repo          interfaces.IQuotationRepository
	furnitureRepo interfaces.IFurnitureRepository
	variantRepo   interfaces.IVariantRepository
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository, furnitureRepo interfaces.IFurnitureRepository, variantRepo interfaces.IVariantRepository) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, furnitureRepo: furnitureRepo, variantRepo: variantRepo}
}

// CreateQuotation builds a PENDING quotation from the requested lines.
//
// Lines are validated and priced in input order; the first failing line
// aborts the whole request and nothing is persisted. Stock is read but
// never reserved or decremented here.
func (u *QuotationUseCase) CreateQuotation(ctx context.Context, lines []QuotationLineInput) (entities.Quotation, error) {
	if len(lines) == 0 {
		return entities.Quotation{}, ErrEmptyQuotationLines
	}

	total := 0.0
	qlines := make([]entities.QuotationLine, 0, len(lines))

	for _, in := range lines {
		item, variant, err := u.validateLine(ctx, in.FurnitureID, in.VariantID, in.Quantity)
		if err != nil {
			return entities.Quotation{}, err
		}

		unit := UnitPrice(item, variant)
		qlines = append(qlines, entities.QuotationLine{
			FurnitureID:   item.ID,
			FurnitureName: item.Name,
			VariantID:     variant.ID,
			VariantName:   variant.Name,
			Quantity:      in.Quantity,
			UnitPrice:     unit,
		})
		total += unit * float64(in.Quantity)
	}

	q := entities.Quotation{
		ID:     uuid.NewString(),
		Date:   time.Now().UTC(),
		Total:  total,
		Status: entities.QuotationStatusPending,
		Lines:  qlines,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] created quotation_id=%s lines=%d total=%.2f", created.ID, len(created.Lines), created.Total)
	return created, nil
}

// validateLine runs the shared per-line rule set: item exists, item is
// active, variant exists, stock covers the quantity. Both quoting and
// confirmation apply these same rules against the catalog state of their
// own moment.
func (u *QuotationUseCase) validateLine(ctx context.Context, furnitureID, variantID string, quantity int) (entities.FurnitureItem, entities.Variant, error) {
	furnitureID = strings.TrimSpace(furnitureID)
	if furnitureID == "" {
		return entities.FurnitureItem{}, entities.Variant{}, ErrInvalidFurnitureID
	}
	variantID = strings.TrimSpace(variantID)
	if variantID == "" {
		return entities.FurnitureItem{}, entities.Variant{}, ErrInvalidVariantID
	}
	if quantity <= 0 {
		return entities.FurnitureItem{}, entities.Variant{}, ErrInvalidQuantity
	}

	item, err := u.furnitureRepo.GetByID(ctx, furnitureID)
	if err != nil {
		return entities.FurnitureItem{}, entities.Variant{}, err
	}
	if item.ID == "" {
		return entities.FurnitureItem{}, entities.Variant{}, fmt.Errorf("%w: %s", ErrFurnitureNotFound, furnitureID)
	}
	if item.Status == entities.FurnitureStatusInactive {
		return entities.FurnitureItem{}, entities.Variant{}, fmt.Errorf("%w: %s", ErrFurnitureUnavailable, item.Name)
	}

	variant, err := u.variantRepo.GetByID(ctx, variantID)
	if err != nil {
		return entities.FurnitureItem{}, entities.Variant{}, err
	}
	if variant.ID == "" {
		return entities.FurnitureItem{}, entities.Variant{}, fmt.Errorf("%w: %s", ErrVariantNotFound, variantID)
	}

	if item.Stock < quantity {
		return entities.FurnitureItem{}, entities.Variant{}, fmt.Errorf("%w: %s", ErrInsufficientStock, item.Name)
	}

	return item, variant, nil
}

// ConfirmSale turns a PENDING quotation into a completed sale.
//
// Every stored line is re-validated in order against the catalog as it is
// now. Only when all lines pass are the stock decrements and the status
// flip applied, in one transaction, so a failure can never leave partial
// decrements behind. Confirmation is deliberately not idempotent: a
// second call on a CONFIRMED quotation fails and touches no stock.
func (u *QuotationUseCase) ConfirmSale(ctx context.Context, quotationID string) (entities.Quotation, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	log.Printf("[quotation][usecase] confirm start quotation_id=%s", quotationID)
	q, err := u.repo.GetByID(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	if q.Status == entities.QuotationStatusConfirmed {
		log.Printf("[quotation][usecase] confirm rejected quotation_id=%s already confirmed", quotationID)
		return entities.Quotation{}, ErrQuotationAlreadyConfirmed
	}

	for _, line := range q.Lines {
		item, err := u.furnitureRepo.GetByID(ctx, line.FurnitureID)
		if err != nil {
			return entities.Quotation{}, err
		}
		if item.ID == "" {
			return entities.Quotation{}, fmt.Errorf("%w: %s", ErrFurnitureNotFound, line.FurnitureName)
		}
		if item.Status == entities.FurnitureStatusInactive {
			return entities.Quotation{}, fmt.Errorf("%w: %s", ErrFurnitureUnavailable, item.Name)
		}
		if item.Stock < line.Quantity {
			return entities.Quotation{}, fmt.Errorf("%w: %s", ErrInsufficientStock, item.Name)
		}
	}

	confirmed, err := u.repo.Confirm(ctx, q)
	if err != nil {
		log.Printf("[quotation][usecase] confirm failed quotation_id=%s err=%v", quotationID, err)
		return entities.Quotation{}, err
	}
	if confirmed.ID == "" {
		// The transaction lost a race: another confirmation or a stock
		// change got in between the checks above and the commit.
		log.Printf("[quotation][usecase] confirm conflict quotation_id=%s", quotationID)
		return entities.Quotation{}, ErrConfirmationConflict
	}

	log.Printf("[quotation][usecase] confirm success quotation_id=%s total=%.2f", confirmed.ID, confirmed.Total)
	return confirmed, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) List(ctx context.Context) ([]entities.Quotation, error) {
	return u.repo.List(ctx)
}
