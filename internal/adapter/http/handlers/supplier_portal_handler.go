package handlers

import (
	"errors"
	"net/http"

	request "gestao_obras/internal/adapter/http/dto/request"
	response "gestao_obras/internal/adapter/http/dto/response"
	"gestao_obras/internal/usecase"
	"gestao_obras/pkg"

	"github.com/gin-gonic/gin"
)

// SupplierPortalHandler serves the public routes used by invited suppliers. There is
// no bearer identity here: every call carries the quote token and the supplier tax id.
type SupplierPortalHandler struct {
	usecase usecase.ISupplierPortalUseCase
}

func NewSupplierPortalHandler(uc usecase.ISupplierPortalUseCase) *SupplierPortalHandler {
	return &SupplierPortalHandler{usecase: uc}
}

// Login godoc
// @Summary      Supplier login
// @Description  Resolves the quotation behind a quote token for an invited supplier tax id.
// @Tags         supplier-portal
// @Accept       json
// @Produce      json
// @Param        credentials  body      request.SupplierLoginRequest  true  "Token and CNPJ"
// @Success      200          {object}  response.LPUResponse
// @Failure      403          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Failure      429          {object}  pkg.HTTPError
// @Router       /public/supplier/login [post]
func (h *SupplierPortalHandler) Login(c *gin.Context) {
	var payload request.SupplierLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	l, err := h.usecase.Login(c.Request.Context(), payload.Token, payload.CNPJ)
	if err != nil {
		respondError(c, mapSupplierPortalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLPU(l))
}

// Submit godoc
// @Summary      Supplier submit
// @Description  Stores the supplier prices and quantities. Accepted once per quotation cycle.
// @Tags         supplier-portal
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "LPU id"
// @Param        body  body      request.SupplierSubmitRequest  true  "Submission"
// @Success      200   {object}  response.MessageResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /public/supplier/lpus/{id}/submit [post]
func (h *SupplierPortalHandler) Submit(c *gin.Context) {
	var payload request.SupplierSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	if _, err := h.usecase.Submit(c.Request.Context(), c.Param("id"), payload.ToSubmission()); err != nil {
		respondError(c, mapSupplierPortalError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Cotação enviada com sucesso"})
}

func mapSupplierPortalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Cotação não encontrada ou token inválido.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoInvitedSuppliers):
		return pkg.NewDomainErrorSimple("NO_INVITED_SUPPLIERS", "Esta cotação não possui fornecedores convidados.", http.StatusForbidden)
	case errors.Is(err, usecase.ErrTaxIDNotAuthorized):
		return pkg.NewDomainErrorSimple("TAX_ID_NOT_AUTHORIZED", "CNPJ não autorizado para esta cotação.", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidQuoteToken):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_TOKEN", "Token inválido", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidLPUID):
		return errInvalidRequest
	}
	if appErr, ok := mapQuotationError(err); ok {
		return appErr
	}
	return internalError(err)
}
