package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"muebleria_xpto/internal/adapter/http/handlers/mocks"
	"muebleria_xpto/internal/domain/entities"
	"muebleria_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestVariantHandler_CreateVariant(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVariantUseCase(ctrl)
		h := NewVariantHandler(uc)

		r := gin.New()
		r.POST("/v1/variants", h.CreateVariant)

		req := httptest.NewRequest(http.MethodPost, "/v1/variants", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing price delta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVariantUseCase(ctrl)
		h := NewVariantHandler(uc)

		r := gin.New()
		r.POST("/v1/variants", h.CreateVariant)

		req := httptest.NewRequest(http.MethodPost, "/v1/variants", bytes.NewBufferString(`{"name":"Normal"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("name taken maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVariantUseCase(ctrl)
		h := NewVariantHandler(uc)

		r := gin.New()
		r.POST("/v1/variants", h.CreateVariant)

		uc.EXPECT().Create(gomock.Any(), "Normal", 0.0).Return(entities.Variant{}, usecase.ErrVariantNameTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/variants", bytes.NewBufferString(`{"name":"Normal","price_delta":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success with zero delta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVariantUseCase(ctrl)
		h := NewVariantHandler(uc)

		r := gin.New()
		r.POST("/v1/variants", h.CreateVariant)

		uc.EXPECT().Create(gomock.Any(), "Normal", 0.0).Return(entities.Variant{ID: "v-1", Name: "Normal", PriceDelta: 0}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/variants", bytes.NewBufferString(`{"name":"Normal","price_delta":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "v-1" || body["name"] != "Normal" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestVariantHandler_Getters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get by id success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVariantUseCase(ctrl)
		h := NewVariantHandler(uc)
		r := gin.New()
		r.GET("/v1/variants/:variant_id", h.GetVariantByID)

		uc.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Variant{ID: "v-1", Name: "Normal"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/variants/v-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVariantUseCase(ctrl)
		h := NewVariantHandler(uc)
		r := gin.New()
		r.GET("/v1/variants/:variant_id", h.GetVariantByID)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Variant{}, usecase.ErrVariantNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/variants/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVariantUseCase(ctrl)
		h := NewVariantHandler(uc)
		r := gin.New()
		r.GET("/v1/variants", h.ListVariants)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Variant{{ID: "v-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/variants", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapVariantError(t *testing.T) {
	if got := mapVariantError(usecase.ErrInvalidVariantID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapVariantError(usecase.ErrInvalidVariantInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapVariantError(usecase.ErrVariantNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapVariantError(usecase.ErrVariantNameTaken); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapVariantError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
