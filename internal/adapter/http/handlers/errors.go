package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"gestao_obras/internal/usecase"
	"gestao_obras/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	errInvalidLPUPayload      = pkg.NewDomainErrorSimple("INVALID_LPU_INPUT", "Dados da LPU inválidos", http.StatusBadRequest)
	errInvalidSupplierPayload = pkg.NewDomainErrorSimple("INVALID_SUPPLIER_INPUT", "Dados do fornecedor inválidos", http.StatusBadRequest)
	errInvalidRequest         = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logrus.Errorf("[http][handler] %s %s failed code=%s err=%v", c.Request.Method, c.FullPath(), appErr.Code, appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindOptionalJSON binds the body when there is one; an empty body leaves obj untouched.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
}

// mapQuotationError covers the state machine errors shared by internal and public routes.
func mapQuotationError(err error) (*pkg.AppError, bool) {
	var revErr *usecase.RevisionNotFoundError
	switch {
	case errors.As(err, &revErr):
		return pkg.NewDomainErrorSimple("REVISION_NOT_FOUND", fmt.Sprintf("Revisão %d não encontrada", revErr.Number), http.StatusNotFound), true
	case errors.Is(err, usecase.ErrRevisionNotFound):
		return pkg.NewDomainErrorSimple("REVISION_NOT_FOUND", "Revisão não encontrada", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrLPUNotFound):
		return pkg.NewDomainErrorSimple("LPU_NOT_FOUND", "LPU não encontrada", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrAlreadySubmitted):
		return pkg.NewDomainErrorSimple("QUOTATION_ALREADY_SUBMITTED", "Esta cotação já foi enviada.", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrAlreadyApproved):
		return pkg.NewDomainErrorSimple("QUOTATION_ALREADY_APPROVED", "Esta cotação já foi aprovada.", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Operação não permitida no status atual da LPU", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("LPU_CONCURRENT_MODIFICATION", "A LPU foi alterada por outra operação. Recarregue e tente novamente.", http.StatusConflict), true
	case errors.Is(err, usecase.ErrInvalidLPUStatus):
		return pkg.NewDomainError("LPU_DATA_INTEGRITY", "Status da LPU armazenado é inválido", err, http.StatusInternalServerError), true
	}
	return nil, false
}
