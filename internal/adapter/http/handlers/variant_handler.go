package handlers

import (
	"errors"
	"net/http"

	request "muebleria_xpto/internal/adapter/http/dto/request"
	response "muebleria_xpto/internal/adapter/http/dto/response"
	"muebleria_xpto/internal/usecase"
	"muebleria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidVariantPayload = pkg.NewDomainErrorSimple("INVALID_VARIANT_INPUT", "Invalid variant payload", http.StatusBadRequest)

// VariantHandler handles HTTP requests for finish variants.

type VariantHandler struct {
	usecase usecase.IVariantUseCase
}

func NewVariantHandler(uc usecase.IVariantUseCase) *VariantHandler {
	return &VariantHandler{usecase: uc}
}

func (h *VariantHandler) CreateVariant(c *gin.Context) {
	var payload request.VariantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVariantPayload.HTTPStatus, errInvalidVariantPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.Create(c.Request.Context(), payload.Name, *payload.PriceDelta)
	if err != nil {
		appErr := mapVariantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVariant(v))
}

func (h *VariantHandler) GetVariantByID(c *gin.Context) {
	v, err := h.usecase.GetByID(c.Request.Context(), c.Param("variant_id"))
	if err != nil {
		appErr := mapVariantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVariant(v))
}

func (h *VariantHandler) ListVariants(c *gin.Context) {
	vs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapVariantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVariants(vs))
}

func mapVariantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVariantID), errors.Is(err, usecase.ErrInvalidVariantInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVariantNotFound):
		return pkg.NewDomainErrorSimple("VARIANT_NOT_FOUND", "Variant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVariantNameTaken):
		return pkg.NewDomainErrorSimple("VARIANT_NAME_TAKEN", "A variant with this name already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
