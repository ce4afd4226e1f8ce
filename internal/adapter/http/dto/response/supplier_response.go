package response

import (
	"time"

	"gestao_obras/internal/domain/entities"
)

type SupplierResponse struct {
	ID                  string    `json:"id"`
	SocialReason        string    `json:"social_reason"`
	CNPJ                string    `json:"cnpj"`
	ContractStart       string    `json:"contract_start"`
	ContractEnd         string    `json:"contract_end"`
	Project             string    `json:"project"`
	HiringType          string    `json:"hiring_type"`
	Headquarters        string    `json:"headquarters"`
	LegalRepresentative string    `json:"legal_representative"`
	RepresentativeEmail string    `json:"representative_email"`
	Contact             string    `json:"contact"`
	Witness             string    `json:"witness"`
	WitnessEmail        string    `json:"witness_email"`
	Observations        string    `json:"observations"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromSupplier(s entities.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:                  s.ID,
		SocialReason:        s.SocialReason,
		CNPJ:                s.CNPJ,
		ContractStart:       s.ContractStart,
		ContractEnd:         s.ContractEnd,
		Project:             s.Project,
		HiringType:          s.HiringType,
		Headquarters:        s.Headquarters,
		LegalRepresentative: s.LegalRepresentative,
		RepresentativeEmail: s.RepresentativeEmail,
		Contact:             s.Contact,
		Witness:             s.Witness,
		WitnessEmail:        s.WitnessEmail,
		Observations:        s.Observations,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func FromSuppliers(items []entities.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSupplier(s))
	}
	return out
}
