package request

import (
	"time"

	"gestao_obras/internal/domain/entities"
)

type InvitedSupplierRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name"`
}

type QuotePermissionsRequest struct {
	AllowQuantityChange bool `json:"allow_quantity_change"`
	AllowAddItems       bool `json:"allow_add_items"`
	AllowRemoveItems    bool `json:"allow_remove_items"`
	AllowLPUEdit        bool `json:"allow_lpu_edit"`
}

func (r *QuotePermissionsRequest) ToEntity() *entities.QuotePermissions {
	if r == nil {
		return nil
	}
	return &entities.QuotePermissions{
		AllowQuantityChange: r.AllowQuantityChange,
		AllowAddItems:       r.AllowAddItems,
		AllowRemoveItems:    r.AllowRemoveItems,
		AllowLPUEdit:        r.AllowLPUEdit,
	}
}

// LPURequest is the body of POST /lpus and PUT /lpus/{id}. History, submission
// metadata and revision comment are managed by the server and not accepted here.
type LPURequest struct {
	ID        string     `json:"id" binding:"required"`
	WorkID    string     `json:"work_id" binding:"required"`
	LimitDate string     `json:"limit_date"`
	CreatedAt *time.Time `json:"created_at"`

	AllowQuantityChange bool `json:"allow_quantity_change"`
	AllowAddItems       bool `json:"allow_add_items"`
	AllowRemoveItems    bool `json:"allow_remove_items"`
	AllowLPUEdit        bool `json:"allow_lpu_edit"`

	Status           string                   `json:"status" binding:"omitempty,oneof=draft waiting submitted approved"`
	QuoteToken       string                   `json:"quote_token"`
	InvitedSuppliers []InvitedSupplierRequest `json:"invited_suppliers" binding:"omitempty,dive"`
	QuotePermissions *QuotePermissionsRequest `json:"quote_permissions"`
	SelectedItems    []string                 `json:"selected_items"`

	Prices     map[string]float64 `json:"prices"`
	Quantities map[string]float64 `json:"quantities"`

	// Version, when set, must match the stored document.
	Version int64 `json:"version" binding:"gte=0"`
}

func (r LPURequest) ToEntity() entities.LPU {
	l := entities.LPU{
		ID:                  r.ID,
		WorkID:              r.WorkID,
		LimitDate:           r.LimitDate,
		AllowQuantityChange: r.AllowQuantityChange,
		AllowAddItems:       r.AllowAddItems,
		AllowRemoveItems:    r.AllowRemoveItems,
		AllowLPUEdit:        r.AllowLPUEdit,
		Status:              entities.LPUStatus(r.Status),
		QuoteToken:          r.QuoteToken,
		QuotePermissions:    r.QuotePermissions.ToEntity(),
		SelectedItems:       r.SelectedItems,
		Prices:              r.Prices,
		Quantities:          r.Quantities,
		Version:             r.Version,
	}
	if r.CreatedAt != nil {
		l.CreatedAt = r.CreatedAt.UTC()
	}
	if len(r.InvitedSuppliers) > 0 {
		l.InvitedSuppliers = make([]entities.InvitedSupplier, 0, len(r.InvitedSuppliers))
		for _, s := range r.InvitedSuppliers {
			l.InvitedSuppliers = append(l.InvitedSuppliers, entities.InvitedSupplier{ID: s.ID, Name: s.Name})
		}
	}
	return l
}

// OpenQuotationRequest invites registered suppliers, in the given order.
type OpenQuotationRequest struct {
	SupplierIDs      []string                 `json:"supplier_ids" binding:"required,min=1,dive,required"`
	QuotePermissions *QuotePermissionsRequest `json:"quote_permissions"`
}

type RevisionRequest struct {
	Comment string `json:"comment"`
}

type ApproveRequest struct {
	RevisionNumber *int `json:"revision_number"`
}
