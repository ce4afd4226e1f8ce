package usecase

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"gestao_obras/internal/domain/entities"
)

var (
	ErrInvalidLPUStatus   = errors.New("invalid stored lpu status")
	ErrInvalidTransition  = errors.New("invalid lpu status transition")
	ErrNoInvitedSuppliers = errors.New("lpu has no invited suppliers")
	ErrInvalidQuoteToken  = errors.New("invalid quote token")
	ErrAlreadySubmitted   = errors.New("quotation already submitted")
	ErrAlreadyApproved    = errors.New("quotation already approved")
	ErrRevisionNotFound   = errors.New("revision not found")
)

// RevisionNotFoundError carries the requested revision number.
type RevisionNotFoundError struct {
	Number int
}

func (e *RevisionNotFoundError) Error() string {
	return fmt.Sprintf("revision %d not found", e.Number)
}

func (e *RevisionNotFoundError) Is(target error) bool {
	return target == ErrRevisionNotFound
}

// SubmissionInput is what a supplier sends on submit, after tax id normalization.
type SubmissionInput struct {
	Token        string
	RawTaxID     string
	SignerName   string
	SupplierName string
	Prices       map[string]float64
	Quantities   map[string]float64
}

// currentStatus reads the stored status. Documents written before the status field
// existed default to draft; anything else outside the valid set is corrupt data.
func currentStatus(l entities.LPU) (entities.LPUStatus, error) {
	if l.Status == "" {
		return entities.LPUStatusDraft, nil
	}
	if !l.Status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLPUStatus, l.Status)
	}
	return l.Status, nil
}

func stamp(now time.Time) time.Time {
	return now.UTC().Truncate(time.Second)
}

func cloneMetadata(m *entities.SubmissionMetadata) *entities.SubmissionMetadata {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func cloneValues(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return maps.Clone(m)
}

// OpenForQuotation moves the LPU to waiting with a fresh token and the given invitees.
func OpenForQuotation(l entities.LPU, invitees []entities.InvitedSupplier, perms *entities.QuotePermissions, token string) (entities.LPU, error) {
	if _, err := currentStatus(l); err != nil {
		return entities.LPU{}, err
	}
	if len(invitees) == 0 {
		return entities.LPU{}, ErrNoInvitedSuppliers
	}
	if strings.TrimSpace(token) == "" {
		return entities.LPU{}, ErrInvalidQuoteToken
	}

	l.InvitedSuppliers = slices.Clone(invitees)
	if perms != nil {
		p := *perms
		l.QuotePermissions = &p
	}
	l.QuoteToken = token
	l.Status = entities.LPUStatusWaiting
	return l, nil
}

// CancelQuotation withdraws an open quotation, invalidating its token.
func CancelQuotation(l entities.LPU) (entities.LPU, error) {
	status, err := currentStatus(l)
	if err != nil {
		return entities.LPU{}, err
	}
	if status != entities.LPUStatusDraft && status != entities.LPUStatusWaiting {
		return entities.LPU{}, fmt.Errorf("%w: cannot cancel a %s quotation", ErrInvalidTransition, status)
	}

	l.QuoteToken = ""
	l.Status = entities.LPUStatusDraft
	return l, nil
}

// CheckSubmittable runs the submission guards without changing anything.
func CheckSubmittable(l entities.LPU, token string) error {
	status, err := currentStatus(l)
	if err != nil {
		return err
	}
	if l.QuoteToken == "" || subtle.ConstantTimeCompare([]byte(l.QuoteToken), []byte(token)) != 1 {
		return ErrInvalidQuoteToken
	}
	switch status {
	case entities.LPUStatusSubmitted:
		return ErrAlreadySubmitted
	case entities.LPUStatusApproved:
		return ErrAlreadyApproved
	case entities.LPUStatusDraft:
		return fmt.Errorf("%w: quotation is not open", ErrInvalidTransition)
	}
	return nil
}

// Submit records a supplier submission. Checks run in order: token, then
// resubmission, then the remaining status rules.
func Submit(l entities.LPU, in SubmissionInput, now time.Time) (entities.LPU, error) {
	if err := CheckSubmittable(l, in.Token); err != nil {
		return entities.LPU{}, err
	}

	name := in.SupplierName
	if name == "" {
		name = entities.UnknownSupplierName
	}

	l.Prices = cloneValues(in.Prices)
	l.Quantities = cloneValues(in.Quantities)
	l.Status = entities.LPUStatusSubmitted
	l.SubmissionMetadata = &entities.SubmissionMetadata{
		SignerName:     in.SignerName,
		SubmissionDate: stamp(now),
		SupplierName:   name,
		SupplierCNPJ:   in.RawTaxID,
	}
	return l, nil
}

// RequestRevision reopens the quotation. A submitted quotation is snapshotted into
// history first; other statuses only get the reset.
func RequestRevision(l entities.LPU, comment string, now time.Time) (entities.LPU, error) {
	status, err := currentStatus(l)
	if err != nil {
		return entities.LPU{}, err
	}

	if status == entities.LPUStatusSubmitted {
		rev := entities.LPURevision{
			Prices:             cloneValues(l.Prices),
			Quantities:         cloneValues(l.Quantities),
			SubmissionMetadata: cloneMetadata(l.SubmissionMetadata),
			CreatedAt:          stamp(now),
			RevisionNumber:     len(l.History) + 1,
		}
		l.History = append(slices.Clip(l.History), rev)
	}

	l.Status = entities.LPUStatusWaiting
	l.RevisionComment = comment
	l.Prices = map[string]float64{}
	l.Quantities = map[string]float64{}
	l.SubmissionMetadata = nil
	return l, nil
}

// Approve accepts the staged values, or restores a history entry when revisionNumber
// is set. History itself is never modified.
func Approve(l entities.LPU, revisionNumber *int) (entities.LPU, error) {
	status, err := currentStatus(l)
	if err != nil {
		return entities.LPU{}, err
	}
	if status == entities.LPUStatusDraft {
		return entities.LPU{}, fmt.Errorf("%w: quotation was never opened", ErrInvalidTransition)
	}

	if revisionNumber != nil {
		rev, ok := l.FindRevision(*revisionNumber)
		if !ok {
			return entities.LPU{}, &RevisionNotFoundError{Number: *revisionNumber}
		}
		l.Prices = cloneValues(rev.Prices)
		l.Quantities = cloneValues(rev.Quantities)
		l.SubmissionMetadata = cloneMetadata(rev.SubmissionMetadata)
	}

	l.Status = entities.LPUStatusApproved
	return l, nil
}
