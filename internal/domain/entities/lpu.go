package entities

import "time"

// LPUStatus represents the quotation lifecycle of an LPU (Lista de Preços Unitários).
//
// Domain notes:
//   - draft -> waiting when the LPU is opened to invited suppliers (token minted).
//   - waiting -> submitted exactly once per cycle, by a supplier.
//   - submitted -> waiting when a reviewer asks for a new revision.
//   - waiting/submitted -> approved by a reviewer. Approved is not terminal: a new
//     revision can still be requested.
type LPUStatus string

const (
	LPUStatusDraft     LPUStatus = "draft"
	LPUStatusWaiting   LPUStatus = "waiting"
	LPUStatusSubmitted LPUStatus = "submitted"
	LPUStatusApproved  LPUStatus = "approved"
)

func (s LPUStatus) IsValid() bool {
	switch s {
	case LPUStatusDraft, LPUStatusWaiting, LPUStatusSubmitted, LPUStatusApproved:
		return true
	}
	return false
}

// UnknownSupplierName is recorded when the submitting tax id matches no invited supplier.
const UnknownSupplierName = "Fornecedor Desconhecido"

// InvitedSupplier is an entry of the LPU authorization allowlist.
type InvitedSupplier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// QuotePermissions mirrors the permission flags chosen when the quotation is opened.
// They drive the supplier UI only.
type QuotePermissions struct {
	AllowQuantityChange bool `json:"allow_quantity_change"`
	AllowAddItems       bool `json:"allow_add_items"`
	AllowRemoveItems    bool `json:"allow_remove_items"`
	AllowLPUEdit        bool `json:"allow_lpu_edit"`
}

// SubmissionMetadata describes who last submitted prices.
type SubmissionMetadata struct {
	SignerName     string    `json:"signer_name"`
	SubmissionDate time.Time `json:"submission_date"`
	SupplierName   string    `json:"supplier_name"`
	SupplierCNPJ   string    `json:"supplier_cnpj"`
}

// LPURevision is an immutable snapshot of a past submission.
type LPURevision struct {
	Prices             map[string]float64  `json:"prices"`
	Quantities         map[string]float64  `json:"quantities"`
	SubmissionMetadata *SubmissionMetadata `json:"submission_metadata,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	RevisionNumber     int                 `json:"revision_number"`
}

// LPU is the unit-price list persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (supplied by the caller)
//   - GSI (quote_token-index): quote_token
//
// Prices and Quantities always hold either the latest supplier submission, the
// snapshot of an approved revision, or nothing while waiting for a new submission.
// History is append-only.
//
// Version is bumped on every write and guards read-modify-write cycles.
type LPU struct {
	ID        string `json:"id"`
	WorkID    string `json:"work_id"`
	LimitDate string `json:"limit_date"`

	AllowQuantityChange bool `json:"allow_quantity_change"`
	AllowAddItems       bool `json:"allow_add_items"`
	AllowRemoveItems    bool `json:"allow_remove_items"`
	AllowLPUEdit        bool `json:"allow_lpu_edit"`

	Status           LPUStatus         `json:"status"`
	QuoteToken       string            `json:"quote_token,omitempty"`
	InvitedSuppliers []InvitedSupplier `json:"invited_suppliers"`
	QuotePermissions *QuotePermissions `json:"quote_permissions,omitempty"`
	SelectedItems    []string          `json:"selected_items"`

	Prices             map[string]float64  `json:"prices"`
	Quantities         map[string]float64  `json:"quantities"`
	SubmissionMetadata *SubmissionMetadata `json:"submission_metadata,omitempty"`
	RevisionComment    string              `json:"revision_comment,omitempty"`
	History            []LPURevision       `json:"history"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindRevision returns the history entry with the given number.
func (l LPU) FindRevision(number int) (LPURevision, bool) {
	for _, r := range l.History {
		if r.RevisionNumber == number {
			return r, true
		}
	}
	return LPURevision{}, false
}
