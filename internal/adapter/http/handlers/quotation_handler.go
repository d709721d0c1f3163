package handlers

import (
	"errors"
	"log"
	"net/http"

	request "muebleria_xpto/internal/adapter/http/dto/request"
	response "muebleria_xpto/internal/adapter/http/dto/response"
	"muebleria_xpto/internal/usecase"
	"muebleria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)

// QuotationHandler handles HTTP requests for the quotation-to-sale
// workflow.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// CreateQuotation prices the requested lines and persists a PENDING
// quotation.
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.QuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	lines := make([]usecase.QuotationLineInput, 0, len(payload.Lines))
	for _, l := range payload.Lines {
		lines = append(lines, usecase.QuotationLineInput{
			FurnitureID: l.FurnitureID,
			VariantID:   l.VariantID,
			Quantity:    l.Quantity,
		})
	}

	q, err := h.usecase.CreateQuotation(c.Request.Context(), lines)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(q))
}

func (h *QuotationHandler) GetQuotationByID(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("quotation_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	qs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotations(qs))
}

// ConfirmSale converts a PENDING quotation into a sale, decrementing
// stock for every line.
func (h *QuotationHandler) ConfirmSale(c *gin.Context) {
	quotationID := c.Param("quotation_id")
	log.Printf("[quotation][handler] confirm start quotation_id=%s", quotationID)

	q, err := h.usecase.ConfirmSale(c.Request.Context(), quotationID)
	if err != nil {
		log.Printf("[quotation][handler] confirm failed quotation_id=%s err=%v", quotationID, err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quotation][handler] confirm success quotation_id=%s", quotationID)

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrEmptyQuotationLines),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidFurnitureID),
		errors.Is(err, usecase.ErrInvalidVariantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFurnitureNotFound):
		return pkg.NewDomainErrorSimple("FURNITURE_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrVariantNotFound):
		return pkg.NewDomainErrorSimple("VARIANT_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrFurnitureUnavailable):
		return pkg.NewDomainErrorSimple("FURNITURE_UNAVAILABLE", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationAlreadyConfirmed):
		return pkg.NewDomainErrorSimple("ALREADY_CONFIRMED", "Quotation was already confirmed as a sale", http.StatusConflict)
	case errors.Is(err, usecase.ErrConfirmationConflict):
		return pkg.NewDomainErrorSimple("CONFIRMATION_CONFLICT", "Stock or quotation state changed concurrently, nothing was applied", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
