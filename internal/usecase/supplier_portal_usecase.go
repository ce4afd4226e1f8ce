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
	ErrQuotationNotFound  = errors.New("quotation not found for token")
	ErrTaxIDNotAuthorized = errors.New("tax id not authorized for quotation")
)

// SupplierSubmission is the public submit payload.
type SupplierSubmission struct {
	Token      string
	TaxID      string
	SignerName string
	Prices     map[string]float64
	Quantities map[string]float64
}

// ISupplierPortalUseCase is the unauthenticated surface used by invited suppliers.
// The credential is the pair {quote token, tax id}; there is no session.
type ISupplierPortalUseCase interface {
	Login(ctx context.Context, token, taxID string) (entities.LPU, error)
	Submit(ctx context.Context, lpuID string, in SupplierSubmission) (entities.LPU, error)
}

type SupplierPortalUseCase struct {
	lpus      interfaces.ILPURepository
	suppliers interfaces.ISupplierRepository
	now       func() time.Time
}

var _ ISupplierPortalUseCase = (*SupplierPortalUseCase)(nil)

func NewSupplierPortalUseCase(lpus interfaces.ILPURepository, suppliers interfaces.ISupplierRepository) *SupplierPortalUseCase {
	return &SupplierPortalUseCase{lpus: lpus, suppliers: suppliers, now: time.Now}
}

// Login returns the whole LPU document when the tax id belongs to an invited supplier.
func (u *SupplierPortalUseCase) Login(ctx context.Context, token, taxID string) (entities.LPU, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.LPU{}, ErrQuotationNotFound
	}

	l, err := u.lpus.FindByQuoteToken(ctx, token)
	if err != nil {
		return entities.LPU{}, err
	}
	if l.ID == "" {
		logrus.Infof("[supplier][usecase] login unknown token")
		return entities.LPU{}, ErrQuotationNotFound
	}
	if _, err := currentStatus(l); err != nil {
		return entities.LPU{}, err
	}
	if len(l.InvitedSuppliers) == 0 {
		logrus.Warnf("[supplier][usecase] login rejected lpu_id=%s reason=no-invitees", l.ID)
		return entities.LPU{}, ErrNoInvitedSuppliers
	}

	index, err := u.inviteeIndex(ctx, l.InvitedSuppliers)
	if err != nil {
		return entities.LPU{}, err
	}
	s, ok := index[entities.NormalizeTaxID(taxID)]
	if !ok {
		logrus.Warnf("[supplier][usecase] login rejected lpu_id=%s reason=tax-id-not-invited", l.ID)
		return entities.LPU{}, ErrTaxIDNotAuthorized
	}

	logrus.Infof("[supplier][usecase] login ok lpu_id=%s supplier_id=%s", l.ID, s.ID)
	return l, nil
}

// Submit stores the supplier prices. A tax id that matches no invitee is accepted and
// recorded as an unknown supplier; only the token gates the submission.
func (u *SupplierPortalUseCase) Submit(ctx context.Context, lpuID string, in SupplierSubmission) (entities.LPU, error) {
	lpuID = strings.TrimSpace(lpuID)
	if lpuID == "" {
		return entities.LPU{}, ErrInvalidLPUID
	}

	l, err := u.lpus.GetByID(ctx, lpuID)
	if err != nil {
		return entities.LPU{}, err
	}
	if l.ID == "" {
		return entities.LPU{}, ErrLPUNotFound
	}
	if err := CheckSubmittable(l, in.Token); err != nil {
		logrus.Warnf("[supplier][usecase] submit rejected lpu_id=%s status=%s err=%v", l.ID, l.Status, err)
		return entities.LPU{}, err
	}

	var supplierName string
	if len(l.InvitedSuppliers) > 0 {
		index, err := u.inviteeIndex(ctx, l.InvitedSuppliers)
		if err != nil {
			return entities.LPU{}, err
		}
		if s, ok := index[entities.NormalizeTaxID(in.TaxID)]; ok {
			supplierName = s.DisplayName()
		}
	}

	next, err := Submit(l, SubmissionInput{
		Token:        in.Token,
		RawTaxID:     in.TaxID,
		SignerName:   strings.TrimSpace(in.SignerName),
		SupplierName: supplierName,
		Prices:       in.Prices,
		Quantities:   in.Quantities,
	}, u.now())
	if err != nil {
		return entities.LPU{}, err
	}
	next.UpdatedAt = u.now().UTC()

	return saveLPU(ctx, u.lpus, next, l.Version, "supplier-submit")
}

// inviteeIndex maps normalized tax id -> supplier with a single batched read. When two
// invitees share a tax id the one invited first wins.
func (u *SupplierPortalUseCase) inviteeIndex(ctx context.Context, invitees []entities.InvitedSupplier) (map[string]entities.Supplier, error) {
	ids := make([]string, 0, len(invitees))
	for _, inv := range invitees {
		if inv.ID != "" {
			ids = append(ids, inv.ID)
		}
	}
	if len(ids) == 0 {
		return map[string]entities.Supplier{}, nil
	}

	found, err := u.suppliers.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Supplier, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	index := make(map[string]entities.Supplier, len(found))
	for _, inv := range invitees {
		s, ok := byID[inv.ID]
		if !ok {
			continue
		}
		key := entities.NormalizeTaxID(s.CNPJ)
		if key == "" {
			continue
		}
		if _, taken := index[key]; !taken {
			index[key] = s
		}
	}
	return index, nil
}
