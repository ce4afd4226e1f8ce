package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrLPUNotFound             = errors.New("lpu not found")
	ErrLPUAlreadyExists        = errors.New("lpu already exists")
	ErrInvalidLPUID            = errors.New("invalid lpu id")
	ErrInvalidWorkID           = errors.New("invalid work id")
	ErrLPUIDMismatch           = errors.New("lpu id mismatch")
	ErrWorkNotFound            = errors.New("work not found")
	ErrInvalidStatusValue      = errors.New("invalid lpu status value")
	ErrConcurrentModification  = errors.New("lpu modified concurrently")
	ErrQuoteTokenGeneration    = errors.New("failed generating quote token")
	ErrInvitedSupplierNotFound = errors.New("invited supplier not found")
)

// ILPUUseCase exposes the internal LPU operations.
//
// Administration:
//   - POST/GET/PUT/DELETE /lpus => Create(), List(), GetByID(), Replace(), Delete()
//
// Quotation cycle:
//   - POST /lpus/{id}/quotation => OpenQuotation()
//   - DELETE /lpus/{id}/quotation => CancelQuotation()
//   - POST /lpus/{id}/revision => RequestRevision()
//   - POST /lpus/{id}/approve => Approve()
type ILPUUseCase interface {
	Create(ctx context.Context, l entities.LPU) (entities.LPU, error)
	GetByID(ctx context.Context, id string) (entities.LPU, error)
	List(ctx context.Context) ([]entities.LPU, error)
	Replace(ctx context.Context, id string, l entities.LPU) (entities.LPU, error)
	Delete(ctx context.Context, id string) error
	OpenQuotation(ctx context.Context, id string, supplierIDs []string, perms *entities.QuotePermissions) (entities.LPU, error)
	CancelQuotation(ctx context.Context, id string) (entities.LPU, error)
	RequestRevision(ctx context.Context, id string, comment string) (entities.LPU, error)
	Approve(ctx context.Context, id string, revisionNumber *int) (entities.LPU, error)
}

type LPUUseCase struct {
	repo      interfaces.ILPURepository
	works     interfaces.IWorkRepository
	suppliers interfaces.ISupplierRepository
	tokens    interfaces.ITokenGenerator
	now       func() time.Time
}

var _ ILPUUseCase = (*LPUUseCase)(nil)

func NewLPUUseCase(repo interfaces.ILPURepository, works interfaces.IWorkRepository, suppliers interfaces.ISupplierRepository, tokens interfaces.ITokenGenerator) *LPUUseCase {
	return &LPUUseCase{repo: repo, works: works, suppliers: suppliers, tokens: tokens, now: time.Now}
}

func (u *LPUUseCase) Create(ctx context.Context, l entities.LPU) (entities.LPU, error) {
	l.ID = strings.TrimSpace(l.ID)
	l.WorkID = strings.TrimSpace(l.WorkID)
	if l.ID == "" {
		return entities.LPU{}, ErrInvalidLPUID
	}
	if l.WorkID == "" {
		return entities.LPU{}, ErrInvalidWorkID
	}

	if err := u.ensureWork(ctx, l.WorkID); err != nil {
		return entities.LPU{}, err
	}

	now := u.now().UTC()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now
	l.Status = entities.LPUStatusDraft
	l.QuoteToken = ""
	l.SubmissionMetadata = nil
	l.RevisionComment = ""
	l.History = nil
	l.Prices = cloneValues(l.Prices)
	l.Quantities = cloneValues(l.Quantities)

	created, err := u.repo.Create(ctx, l)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return entities.LPU{}, ErrLPUAlreadyExists
	}
	if err != nil {
		return entities.LPU{}, err
	}
	logrus.Infof("[lpu][usecase] created lpu_id=%s work_id=%s", created.ID, created.WorkID)
	return created, nil
}

func (u *LPUUseCase) GetByID(ctx context.Context, id string) (entities.LPU, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LPU{}, ErrInvalidLPUID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LPU{}, err
	}
	if l.ID == "" {
		return entities.LPU{}, ErrLPUNotFound
	}
	return l, nil
}

func (u *LPUUseCase) List(ctx context.Context) ([]entities.LPU, error) {
	return u.repo.List(ctx)
}

// Replace overwrites the client-editable fields. History, submission metadata,
// revision comment and creation time always come from the stored document.
func (u *LPUUseCase) Replace(ctx context.Context, id string, l entities.LPU) (entities.LPU, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LPU{}, ErrInvalidLPUID
	}
	if strings.TrimSpace(l.ID) != id {
		return entities.LPU{}, ErrLPUIDMismatch
	}
	l.ID = id
	l.WorkID = strings.TrimSpace(l.WorkID)
	if l.WorkID == "" {
		return entities.LPU{}, ErrInvalidWorkID
	}
	if l.Status != "" && !l.Status.IsValid() {
		return entities.LPU{}, fmt.Errorf("%w: %q", ErrInvalidStatusValue, l.Status)
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.LPU{}, err
	}
	if l.Version > 0 && l.Version != current.Version {
		return entities.LPU{}, ErrConcurrentModification
	}
	if l.WorkID != current.WorkID {
		if err := u.ensureWork(ctx, l.WorkID); err != nil {
			return entities.LPU{}, err
		}
	}

	if l.Status == "" {
		l.Status = current.Status
	}
	if l.Status == entities.LPUStatusDraft {
		l.QuoteToken = ""
	}
	l.History = current.History
	l.SubmissionMetadata = current.SubmissionMetadata
	l.RevisionComment = current.RevisionComment
	l.CreatedAt = current.CreatedAt
	l.Prices = cloneValues(l.Prices)
	l.Quantities = cloneValues(l.Quantities)

	if err := u.ensureToken(&l); err != nil {
		return entities.LPU{}, err
	}
	return u.save(ctx, l, current.Version, "replace")
}

func (u *LPUUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLPUID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLPUNotFound
	}
	logrus.Infof("[lpu][usecase] deleted lpu_id=%s", id)
	return nil
}

// OpenQuotation invites the given registered suppliers, in order, and mints the token
// they will use on the supplier portal.
func (u *LPUUseCase) OpenQuotation(ctx context.Context, id string, supplierIDs []string, perms *entities.QuotePermissions) (entities.LPU, error) {
	ids := make([]string, 0, len(supplierIDs))
	seen := make(map[string]struct{}, len(supplierIDs))
	for _, sid := range supplierIDs {
		sid = strings.TrimSpace(sid)
		if sid == "" {
			continue
		}
		if _, dup := seen[sid]; dup {
			continue
		}
		seen[sid] = struct{}{}
		ids = append(ids, sid)
	}
	if len(ids) == 0 {
		return entities.LPU{}, ErrNoInvitedSuppliers
	}

	found, err := u.suppliers.GetByIDs(ctx, ids)
	if err != nil {
		return entities.LPU{}, err
	}
	byID := make(map[string]entities.Supplier, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}
	invitees := make([]entities.InvitedSupplier, 0, len(ids))
	for _, sid := range ids {
		s, ok := byID[sid]
		if !ok {
			return entities.LPU{}, fmt.Errorf("%w: %s", ErrInvitedSupplierNotFound, sid)
		}
		invitees = append(invitees, entities.InvitedSupplier{ID: s.ID, Name: s.DisplayName()})
	}

	token, err := u.tokens.NewQuoteToken()
	if err != nil {
		return entities.LPU{}, fmt.Errorf("%w: %v", ErrQuoteTokenGeneration, err)
	}

	return u.transition(ctx, id, "open-quotation", func(l entities.LPU) (entities.LPU, error) {
		return OpenForQuotation(l, invitees, perms, token)
	})
}

func (u *LPUUseCase) CancelQuotation(ctx context.Context, id string) (entities.LPU, error) {
	return u.transition(ctx, id, "cancel-quotation", CancelQuotation)
}

func (u *LPUUseCase) RequestRevision(ctx context.Context, id string, comment string) (entities.LPU, error) {
	comment = strings.TrimSpace(comment)
	now := u.now()
	return u.transition(ctx, id, "revision", func(l entities.LPU) (entities.LPU, error) {
		next, err := RequestRevision(l, comment, now)
		if err != nil {
			return entities.LPU{}, err
		}
		return next, u.ensureToken(&next)
	})
}

func (u *LPUUseCase) Approve(ctx context.Context, id string, revisionNumber *int) (entities.LPU, error) {
	return u.transition(ctx, id, "approve", func(l entities.LPU) (entities.LPU, error) {
		return Approve(l, revisionNumber)
	})
}

// transition is the read -> pure transition -> conditional write cycle shared by
// every state change. A concurrent writer makes the save fail and nothing is stored.
func (u *LPUUseCase) transition(ctx context.Context, id string, op string, fn func(entities.LPU) (entities.LPU, error)) (entities.LPU, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.LPU{}, err
	}

	next, err := fn(current)
	if err != nil {
		logrus.Warnf("[lpu][usecase] %s rejected lpu_id=%s status=%s err=%v", op, current.ID, current.Status, err)
		return entities.LPU{}, err
	}
	return u.save(ctx, next, current.Version, op)
}

func (u *LPUUseCase) save(ctx context.Context, l entities.LPU, expectedVersion int64, op string) (entities.LPU, error) {
	l.UpdatedAt = u.now().UTC()
	return saveLPU(ctx, u.repo, l, expectedVersion, op)
}

func saveLPU(ctx context.Context, repo interfaces.ILPURepository, l entities.LPU, expectedVersion int64, op string) (entities.LPU, error) {
	saved, err := repo.Save(ctx, l, expectedVersion)
	if errors.Is(err, interfaces.ErrVersionConflict) {
		logrus.Warnf("[lpu][usecase] %s lost race lpu_id=%s expected_version=%d", op, l.ID, expectedVersion)
		return entities.LPU{}, ErrConcurrentModification
	}
	if err != nil {
		return entities.LPU{}, err
	}
	logrus.Infof("[lpu][usecase] %s saved lpu_id=%s status=%s version=%d", op, saved.ID, saved.Status, saved.Version)
	return saved, nil
}

// ensureToken keeps waiting quotations reachable by suppliers.
func (u *LPUUseCase) ensureToken(l *entities.LPU) error {
	if l.Status != entities.LPUStatusWaiting || l.QuoteToken != "" {
		return nil
	}
	token, err := u.tokens.NewQuoteToken()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQuoteTokenGeneration, err)
	}
	l.QuoteToken = token
	return nil
}

func (u *LPUUseCase) ensureWork(ctx context.Context, workID string) error {
	ok, err := u.works.Exists(ctx, workID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWorkNotFound
	}
	return nil
}
