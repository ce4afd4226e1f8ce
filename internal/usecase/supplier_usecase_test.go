package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
	mock_interfaces "gestao_obras/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSupplierUseCase_Create(t *testing.T) {
	t.Run("invalid tax id", func(t *testing.T) {
		uc := NewSupplierUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Supplier{ID: "s1", CNPJ: "123"})
		if !errors.Is(err, ErrInvalidSupplierTaxID) {
			t.Fatalf("expected ErrInvalidSupplierTaxID, got %v", err)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewSupplierUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Supplier{}, interfaces.ErrAlreadyExists)

		_, err := uc.Create(context.Background(), entities.Supplier{ID: "s1", CNPJ: "12.345.678/0001-99"})
		if !errors.Is(err, ErrSupplierAlreadyExists) {
			t.Fatalf("expected ErrSupplierAlreadyExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewSupplierUseCase(repo)
		uc.now = func() time.Time { return fixedNow }

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Supplier{})).DoAndReturn(
			func(_ context.Context, s entities.Supplier) (entities.Supplier, error) {
				if s.ID != "s1" || s.CreatedAt.IsZero() || s.CNPJ != "123.456.789-09" {
					t.Fatalf("unexpected supplier: %+v", s)
				}
				return s, nil
			},
		)

		if _, err := uc.Create(context.Background(), entities.Supplier{ID: " s1 ", CNPJ: "123.456.789-09"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestSupplierUseCase_Update(t *testing.T) {
	t.Run("id mismatch", func(t *testing.T) {
		uc := NewSupplierUseCase(nil)
		_, err := uc.Update(context.Background(), "s1", entities.Supplier{ID: "s2", CNPJ: "12345678000199"})
		if !errors.Is(err, ErrSupplierIDMismatch) {
			t.Fatalf("expected ErrSupplierIDMismatch, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewSupplierUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Supplier{}, nil)

		_, err := uc.Update(context.Background(), "s1", entities.Supplier{ID: "s1", CNPJ: "12345678000199"})
		if !errors.Is(err, ErrSupplierNotFound) {
			t.Fatalf("expected ErrSupplierNotFound, got %v", err)
		}
	})
}

func TestSupplierUseCase_GetAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISupplierRepository(ctrl)
	uc := NewSupplierUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Supplier{}, nil)
	if _, err := uc.GetByID(context.Background(), "s1"); !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}

	repo.EXPECT().Delete(gomock.Any(), "s1").Return(false, nil)
	if err := uc.Delete(context.Background(), "s1"); !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}

	if err := uc.Delete(context.Background(), " "); !errors.Is(err, ErrInvalidSupplierID) {
		t.Fatalf("expected ErrInvalidSupplierID, got %v", err)
	}
}
