package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrSupplierNotFound      = errors.New("supplier not found")
	ErrSupplierAlreadyExists = errors.New("supplier already exists")
	ErrInvalidSupplierID     = errors.New("invalid supplier id")
	ErrSupplierIDMismatch    = errors.New("supplier id mismatch")
	ErrInvalidSupplierTaxID  = errors.New("invalid supplier tax id")
)

// ISupplierUseCase manages the supplier registry used to build quotation invitations.
type ISupplierUseCase interface {
	Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	GetByID(ctx context.Context, id string) (entities.Supplier, error)
	List(ctx context.Context) ([]entities.Supplier, error)
	Update(ctx context.Context, id string, s entities.Supplier) (entities.Supplier, error)
	Delete(ctx context.Context, id string) error
}

type SupplierUseCase struct {
	repo interfaces.ISupplierRepository
	now  func() time.Time
}

var _ ISupplierUseCase = (*SupplierUseCase)(nil)

func NewSupplierUseCase(repo interfaces.ISupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, now: time.Now}
}

func validTaxID(raw string) bool {
	n := len(entities.NormalizeTaxID(raw))
	return n == 11 || n == 14
}

func (u *SupplierUseCase) Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.Supplier{}, ErrInvalidSupplierID
	}
	if !validTaxID(s.CNPJ) {
		return entities.Supplier{}, ErrInvalidSupplierTaxID
	}

	now := u.now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	created, err := u.repo.Create(ctx, s)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return entities.Supplier{}, ErrSupplierAlreadyExists
	}
	if err != nil {
		return entities.Supplier{}, err
	}
	logrus.Infof("[supplier][usecase] created supplier_id=%s", created.ID)
	return created, nil
}

func (u *SupplierUseCase) GetByID(ctx context.Context, id string) (entities.Supplier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Supplier{}, ErrInvalidSupplierID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Supplier{}, err
	}
	if s.ID == "" {
		return entities.Supplier{}, ErrSupplierNotFound
	}
	return s, nil
}

func (u *SupplierUseCase) List(ctx context.Context) ([]entities.Supplier, error) {
	return u.repo.List(ctx)
}

func (u *SupplierUseCase) Update(ctx context.Context, id string, s entities.Supplier) (entities.Supplier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Supplier{}, ErrInvalidSupplierID
	}
	if strings.TrimSpace(s.ID) != id {
		return entities.Supplier{}, ErrSupplierIDMismatch
	}
	if !validTaxID(s.CNPJ) {
		return entities.Supplier{}, ErrInvalidSupplierTaxID
	}
	s.ID = id
	s.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.Supplier{}, err
	}
	if updated.ID == "" {
		return entities.Supplier{}, ErrSupplierNotFound
	}
	return updated, nil
}

func (u *SupplierUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSupplierID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSupplierNotFound
	}
	logrus.Infof("[supplier][usecase] deleted supplier_id=%s", id)
	return nil
}
