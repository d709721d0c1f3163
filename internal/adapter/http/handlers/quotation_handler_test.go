package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"muebleria_xpto/internal/adapter/http/handlers/mocks"
	"muebleria_xpto/internal/domain/entities"
	"muebleria_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuotationHandler_CreateQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty lines rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"lines":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero quantity rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"lines":[{"furniture_id":"f-1","variant_id":"v-1","quantity":0}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insufficient stock maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().CreateQuotation(gomock.Any(), []usecase.QuotationLineInput{{FurnitureID: "f-1", VariantID: "v-1", Quantity: 5}}).
			Return(entities.Quotation{}, usecase.ErrInsufficientStock)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"lines":[{"furniture_id":"f-1","variant_id":"v-1","quantity":5}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown furniture maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, usecase.ErrFurnitureNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"lines":[{"furniture_id":"missing","variant_id":"v-1","quantity":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		now := time.Now().UTC()
		uc.EXPECT().CreateQuotation(gomock.Any(), []usecase.QuotationLineInput{{FurnitureID: "f-1", VariantID: "v-1", Quantity: 2}}).
			Return(entities.Quotation{
				ID: "q-1", Date: now, Total: 30000, Status: entities.QuotationStatusPending,
				Lines: []entities.QuotationLine{{FurnitureID: "f-1", FurnitureName: "Silla de Roble", VariantID: "v-1", VariantName: "Normal", Quantity: 2, UnitPrice: 15000}},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"lines":[{"furniture_id":"f-1","variant_id":"v-1","quantity":2}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" || body["status"] != "PENDING" || body["total"] != 30000.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		lines, _ := body["lines"].([]any)
		if len(lines) != 1 {
			t.Fatalf("expected 1 line in body: %s", w.Body.String())
		}
		line, _ := lines[0].(map[string]any)
		if line["subtotal"] != 30000.0 {
			t.Fatalf("unexpected line body: %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_ConfirmSale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	confirmRoute := func(uc *mocks.MockIQuotationUseCase) *gin.Engine {
		h := NewQuotationHandler(uc)
		r := gin.New()
		r.POST("/v1/quotations/:quotation_id/confirm", h.ConfirmSale)
		return r
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := confirmRoute(uc)

		uc.EXPECT().ConfirmSale(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Total: 30000, Status: entities.QuotationStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "CONFIRMED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("already confirmed maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := confirmRoute(uc)

		uc.EXPECT().ConfirmSale(gomock.Any(), "q-1").Return(entities.Quotation{}, usecase.ErrQuotationAlreadyConfirmed)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := confirmRoute(uc)

		uc.EXPECT().ConfirmSale(gomock.Any(), "missing").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/missing/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := confirmRoute(uc)

		uc.EXPECT().ConfirmSale(gomock.Any(), "q-1").Return(entities.Quotation{}, usecase.ErrConfirmationConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_Getters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get by id success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)
		r := gin.New()
		r.GET("/v1/quotations/:quotation_id", h.GetQuotationByID)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusPending}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)
		r := gin.New()
		r.GET("/v1/quotations/:quotation_id", h.GetQuotationByID)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)
		r := gin.New()
		r.GET("/v1/quotations", h.ListQuotations)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Quotation{{ID: "q-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)
		r := gin.New()
		r.GET("/v1/quotations", h.ListQuotations)

		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapQuotationError(t *testing.T) {
	if got := mapQuotationError(usecase.ErrInvalidQuotationID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuotationError(usecase.ErrEmptyQuotationLines); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuotationError(usecase.ErrInvalidQuantity); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuotationError(usecase.ErrQuotationNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuotationError(usecase.ErrFurnitureNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuotationError(usecase.ErrVariantNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuotationError(usecase.ErrFurnitureUnavailable); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuotationError(usecase.ErrInsufficientStock); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuotationError(usecase.ErrQuotationAlreadyConfirmed); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuotationError(usecase.ErrConfirmationConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuotationError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
