package request

import (
	"time"

	"gestao_obras/internal/domain/entities"
)

type SupplierRequest struct {
	ID                  string     `json:"id" binding:"required"`
	SocialReason        string     `json:"social_reason" binding:"required"`
	CNPJ                string     `json:"cnpj" binding:"required,taxid"`
	ContractStart       string     `json:"contract_start"`
	ContractEnd         string     `json:"contract_end"`
	Project             string     `json:"project"`
	HiringType          string     `json:"hiring_type"`
	Headquarters        string     `json:"headquarters"`
	LegalRepresentative string     `json:"legal_representative"`
	RepresentativeEmail string     `json:"representative_email" binding:"omitempty,email"`
	Contact             string     `json:"contact"`
	Witness             string     `json:"witness"`
	WitnessEmail        string     `json:"witness_email" binding:"omitempty,email"`
	Observations        string     `json:"observations"`
	CreatedAt           *time.Time `json:"created_at"`
}

func (r SupplierRequest) ToEntity() entities.Supplier {
	s := entities.Supplier{
		ID:                  r.ID,
		SocialReason:        r.SocialReason,
		CNPJ:                r.CNPJ,
		ContractStart:       r.ContractStart,
		ContractEnd:         r.ContractEnd,
		Project:             r.Project,
		HiringType:          r.HiringType,
		Headquarters:        r.Headquarters,
		LegalRepresentative: r.LegalRepresentative,
		RepresentativeEmail: r.RepresentativeEmail,
		Contact:             r.Contact,
		Witness:             r.Witness,
		WitnessEmail:        r.WitnessEmail,
		Observations:        r.Observations,
	}
	if r.CreatedAt != nil {
		s.CreatedAt = r.CreatedAt.UTC()
	}
	return s
}
