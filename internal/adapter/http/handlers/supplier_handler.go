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

// SupplierHandler serves the supplier registry used to build invitations.
type SupplierHandler struct {
	usecase usecase.ISupplierUseCase
}

func NewSupplierHandler(uc usecase.ISupplierUseCase) *SupplierHandler {
	return &SupplierHandler{usecase: uc}
}

// CreateSupplier godoc
// @Summary   Register a supplier
// @Tags      suppliers
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     supplier  body      request.SupplierRequest  true  "Supplier"
// @Success   201       {object}  response.SupplierResponse
// @Failure   400       {object}  pkg.HTTPError
// @Failure   409       {object}  pkg.HTTPError
// @Router    /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidSupplierPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSupplier(created))
}

// ListSuppliers godoc
// @Summary   List suppliers
// @Tags      suppliers
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  response.SupplierResponse
// @Router    /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSuppliers(items))
}

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSupplier(s))
}

func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidSupplierPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSupplier(updated))
}

func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapSupplierError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Fornecedor removido com sucesso"})
}

func mapSupplierError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSupplierIDMismatch):
		return pkg.NewDomainErrorSimple("SUPPLIER_ID_MISMATCH", "O id do corpo difere do id da URL", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSupplierID), errors.Is(err, usecase.ErrInvalidSupplierTaxID):
		return errInvalidSupplierPayload
	case errors.Is(err, usecase.ErrSupplierNotFound):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_FOUND", "Fornecedor não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSupplierAlreadyExists):
		return pkg.NewDomainErrorSimple("SUPPLIER_ALREADY_EXISTS", "Já existe um fornecedor com este id", http.StatusConflict)
	default:
		return internalError(err)
	}
}
