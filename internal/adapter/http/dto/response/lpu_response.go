package response

import (
	"time"

	"gestao_obras/internal/domain/entities"
)

type LPUResponse struct {
	ID        string    `json:"id"`
	WorkID    string    `json:"work_id"`
	LimitDate string    `json:"limit_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AllowQuantityChange bool `json:"allow_quantity_change"`
	AllowAddItems       bool `json:"allow_add_items"`
	AllowRemoveItems    bool `json:"allow_remove_items"`
	AllowLPUEdit        bool `json:"allow_lpu_edit"`

	Status           string                       `json:"status"`
	QuoteToken       string                       `json:"quote_token,omitempty"`
	InvitedSuppliers []entities.InvitedSupplier   `json:"invited_suppliers"`
	QuotePermissions *entities.QuotePermissions   `json:"quote_permissions"`
	SelectedItems    []string                     `json:"selected_items"`
	Prices           map[string]float64           `json:"prices"`
	Quantities       map[string]float64           `json:"quantities"`
	SubmissionMeta   *entities.SubmissionMetadata `json:"submission_metadata"`
	RevisionComment  string                       `json:"revision_comment,omitempty"`
	History          []entities.LPURevision       `json:"history"`
	Version          int64                        `json:"version"`
}

// FromLPU renders absent collections as empty JSON values instead of null.
func FromLPU(l entities.LPU) LPUResponse {
	res := LPUResponse{
		ID:                  l.ID,
		WorkID:              l.WorkID,
		LimitDate:           l.LimitDate,
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
		AllowQuantityChange: l.AllowQuantityChange,
		AllowAddItems:       l.AllowAddItems,
		AllowRemoveItems:    l.AllowRemoveItems,
		AllowLPUEdit:        l.AllowLPUEdit,
		Status:              string(l.Status),
		QuoteToken:          l.QuoteToken,
		InvitedSuppliers:    l.InvitedSuppliers,
		QuotePermissions:    l.QuotePermissions,
		SelectedItems:       l.SelectedItems,
		Prices:              l.Prices,
		Quantities:          l.Quantities,
		SubmissionMeta:      l.SubmissionMetadata,
		RevisionComment:     l.RevisionComment,
		History:             l.History,
		Version:             l.Version,
	}
	if res.Status == "" {
		res.Status = string(entities.LPUStatusDraft)
	}
	if res.InvitedSuppliers == nil {
		res.InvitedSuppliers = []entities.InvitedSupplier{}
	}
	if res.SelectedItems == nil {
		res.SelectedItems = []string{}
	}
	if res.Prices == nil {
		res.Prices = map[string]float64{}
	}
	if res.Quantities == nil {
		res.Quantities = map[string]float64{}
	}
	if res.History == nil {
		res.History = []entities.LPURevision{}
	}
	return res
}

func FromLPUs(items []entities.LPU) []LPUResponse {
	out := make([]LPUResponse, 0, len(items))
	for _, l := range items {
		out = append(out, FromLPU(l))
	}
	return out
}
