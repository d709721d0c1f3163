package handlers

import (
	"errors"
	"net/http"

	request "muebleria_xpto/internal/adapter/http/dto/request"
	response "muebleria_xpto/internal/adapter/http/dto/response"
	"muebleria_xpto/internal/domain/entities"
	"muebleria_xpto/internal/usecase"
	"muebleria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFurniturePayload = pkg.NewDomainErrorSimple("INVALID_FURNITURE_INPUT", "Invalid furniture item payload", http.StatusBadRequest)

// FurnitureHandler handles HTTP requests for the furniture catalog.

type FurnitureHandler struct {
	usecase usecase.IFurnitureUseCase
}

func NewFurnitureHandler(uc usecase.IFurnitureUseCase) *FurnitureHandler {
	return &FurnitureHandler{usecase: uc}
}

func (h *FurnitureHandler) CreateFurnitureItem(c *gin.Context) {
	in, ok := bindFurnitureInput(c)
	if !ok {
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapFurnitureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFurnitureItem(item))
}

func (h *FurnitureHandler) GetFurnitureItemByID(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("furniture_id"))
	if err != nil {
		appErr := mapFurnitureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFurnitureItem(item))
}

// ListFurnitureItems returns the active catalog; deactivated items are
// hidden from listings but stay reachable by id.
func (h *FurnitureHandler) ListFurnitureItems(c *gin.Context) {
	items, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		appErr := mapFurnitureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFurnitureItems(items))
}

func (h *FurnitureHandler) UpdateFurnitureItem(c *gin.Context) {
	in, ok := bindFurnitureInput(c)
	if !ok {
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), c.Param("furniture_id"), in)
	if err != nil {
		appErr := mapFurnitureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFurnitureItem(item))
}

func (h *FurnitureHandler) PatchFurnitureItem(c *gin.Context) {
	var payload request.FurniturePatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFurniturePayload.HTTPStatus, errInvalidFurniturePayload.ToHTTPError())
		return
	}

	in := usecase.PatchFurnitureInput{
		Name:      payload.Name,
		Type:      payload.Type,
		Material:  payload.Material,
		BasePrice: payload.BasePrice,
		Stock:     payload.Stock,
	}
	if payload.Size != nil {
		size, err := entities.ParseSizeClass(*payload.Size)
		if err != nil {
			c.JSON(errInvalidFurniturePayload.HTTPStatus, errInvalidFurniturePayload.ToHTTPError())
			return
		}
		in.Size = &size
	}

	item, err := h.usecase.Patch(c.Request.Context(), c.Param("furniture_id"), in)
	if err != nil {
		appErr := mapFurnitureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFurnitureItem(item))
}

func (h *FurnitureHandler) ActivateFurnitureItem(c *gin.Context) {
	item, err := h.usecase.Activate(c.Request.Context(), c.Param("furniture_id"))
	if err != nil {
		appErr := mapFurnitureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFurnitureItem(item))
}

func (h *FurnitureHandler) DeactivateFurnitureItem(c *gin.Context) {
	item, err := h.usecase.Deactivate(c.Request.Context(), c.Param("furniture_id"))
	if err != nil {
		appErr := mapFurnitureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFurnitureItem(item))
}

func bindFurnitureInput(c *gin.Context) (usecase.CreateFurnitureInput, bool) {
	var payload request.FurnitureItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFurniturePayload.HTTPStatus, errInvalidFurniturePayload.ToHTTPError())
		return usecase.CreateFurnitureInput{}, false
	}

	size, err := entities.ParseSizeClass(payload.Size)
	if err != nil {
		c.JSON(errInvalidFurniturePayload.HTTPStatus, errInvalidFurniturePayload.ToHTTPError())
		return usecase.CreateFurnitureInput{}, false
	}

	return usecase.CreateFurnitureInput{
		Name:      payload.Name,
		Type:      payload.Type,
		Material:  payload.Material,
		BasePrice: *payload.BasePrice,
		Stock:     *payload.Stock,
		Size:      size,
	}, true
}

func mapFurnitureError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFurnitureID), errors.Is(err, usecase.ErrInvalidFurnitureInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFurnitureNotFound):
		return pkg.NewDomainErrorSimple("FURNITURE_NOT_FOUND", "Furniture item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFurnitureInactive):
		return pkg.NewDomainErrorSimple("FURNITURE_INACTIVE", "Inactive furniture items cannot be modified", http.StatusConflict)
	case errors.Is(err, usecase.ErrFurnitureAlreadyActive):
		return pkg.NewDomainErrorSimple("FURNITURE_ALREADY_ACTIVE", "Furniture item is already active", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
