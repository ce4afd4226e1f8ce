package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"gestao_obras/internal/adapter/http/handlers/mocks"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validSupplierBody = `{"id":"s1","social_reason":"ACME Engenharia","cnpj":"12.345.678/0001-99"}`

func newSupplierRouter(t *testing.T) (*gin.Engine, *mocks.MockISupplierUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISupplierUseCase(ctrl)
	h := NewSupplierHandler(uc)

	r := gin.New()
	r.POST("/suppliers", h.CreateSupplier)
	r.GET("/suppliers", h.ListSuppliers)
	r.GET("/suppliers/:id", h.GetSupplier)
	r.PUT("/suppliers/:id", h.UpdateSupplier)
	r.DELETE("/suppliers/:id", h.DeleteSupplier)
	return r, uc
}

func TestSupplierHandler_CreateSupplier(t *testing.T) {
	t.Run("malformed cnpj", func(t *testing.T) {
		r, _ := newSupplierRouter(t)
		w := performRequest(r, http.MethodPost, "/suppliers", `{"id":"s1","social_reason":"ACME","cnpj":"123"}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "INVALID_SUPPLIER_INPUT" {
			t.Fatalf("expected 400 INVALID_SUPPLIER_INPUT, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		r, uc := newSupplierRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Supplier{}, usecase.ErrSupplierAlreadyExists)

		if w := performRequest(r, http.MethodPost, "/suppliers", validSupplierBody); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newSupplierRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Supplier) (entities.Supplier, error) {
				return s, nil
			},
		)

		w := performRequest(r, http.MethodPost, "/suppliers", validSupplierBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["social_reason"] != "ACME Engenharia" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSupplierHandler_ReadUpdateDelete(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		r, uc := newSupplierRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := performRequest(r, http.MethodGet, "/suppliers", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := newSupplierRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "s9").Return(entities.Supplier{}, usecase.ErrSupplierNotFound)

		if w := performRequest(r, http.MethodGet, "/suppliers/s9", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update id mismatch", func(t *testing.T) {
		r, uc := newSupplierRouter(t)
		uc.EXPECT().Update(gomock.Any(), "s2", gomock.Any()).Return(entities.Supplier{}, usecase.ErrSupplierIDMismatch)

		w := performRequest(r, http.MethodPut, "/suppliers/s2", validSupplierBody)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "SUPPLIER_ID_MISMATCH" {
			t.Fatalf("expected 400 SUPPLIER_ID_MISMATCH, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("update success", func(t *testing.T) {
		r, uc := newSupplierRouter(t)
		uc.EXPECT().Update(gomock.Any(), "s1", gomock.Any()).Return(entities.Supplier{ID: "s1"}, nil)

		if w := performRequest(r, http.MethodPut, "/suppliers/s1", validSupplierBody); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete error", func(t *testing.T) {
		r, uc := newSupplierRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "s1").Return(errors.New("db"))

		if w := performRequest(r, http.MethodDelete, "/suppliers/s1", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
