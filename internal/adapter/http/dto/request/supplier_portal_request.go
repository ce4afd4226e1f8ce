package request

import "gestao_obras/internal/usecase"

// SupplierLoginRequest is the credential pair handed to an invited supplier. The
// cnpj is matched after stripping formatting, so it is not format-validated here.
type SupplierLoginRequest struct {
	Token string `json:"token" binding:"required"`
	CNPJ  string `json:"cnpj" binding:"required"`
}

type SupplierSubmitRequest struct {
	Token      string             `json:"token" binding:"required"`
	CNPJ       string             `json:"cnpj" binding:"required"`
	SignerName string             `json:"signer_name" binding:"required"`
	Prices     map[string]float64 `json:"prices" binding:"required"`
	Quantities map[string]float64 `json:"quantities" binding:"required"`
}

func (r SupplierSubmitRequest) ToSubmission() usecase.SupplierSubmission {
	return usecase.SupplierSubmission{
		Token:      r.Token,
		TaxID:      r.CNPJ,
		SignerName: r.SignerName,
		Prices:     r.Prices,
		Quantities: r.Quantities,
	}
}
