package request

import (
	"gestao_obras/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("taxid", validTaxID)
	}
}

// validTaxID accepts a CPF (11 digits) or CNPJ (14 digits), formatted or not.
func validTaxID(fl validator.FieldLevel) bool {
	n := len(entities.NormalizeTaxID(fl.Field().String()))
	return n == 11 || n == 14
}
