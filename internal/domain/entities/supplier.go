package entities

import (
	"strings"
	"time"
	"unicode"
)

// Supplier is a registered contractor that can be invited to LPU quotations.
//
// Storage model (DynamoDB):
//   - PK: id (supplied by the caller)
//
// CNPJ is stored as typed by the user (with or without punctuation); comparisons
// always go through NormalizeTaxID.
type Supplier struct {
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

// DisplayName is the name recorded on submissions.
func (s Supplier) DisplayName() string {
	if name := strings.TrimSpace(s.SocialReason); name != "" {
		return name
	}
	return s.ID
}

// NormalizeTaxID keeps only the digits of a CPF/CNPJ.
func NormalizeTaxID(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}
