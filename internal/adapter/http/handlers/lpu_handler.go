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

// LPUHandler serves the internal LPU administration and quotation cycle routes.
type LPUHandler struct {
	usecase usecase.ILPUUseCase
}

func NewLPUHandler(uc usecase.ILPUUseCase) *LPUHandler {
	return &LPUHandler{usecase: uc}
}

// CreateLPU godoc
// @Summary      Create an LPU
// @Description  Creates a draft LPU for an existing work. The id is supplied by the caller.
// @Tags         lpus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        lpu  body      request.LPURequest  true  "LPU"
// @Success      201  {object}  response.LPUResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /lpus [post]
func (h *LPUHandler) CreateLPU(c *gin.Context) {
	var payload request.LPURequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidLPUPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapLPUError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLPU(created))
}

// ListLPUs godoc
// @Summary   List LPUs
// @Tags      lpus
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  response.LPUResponse
// @Router    /lpus [get]
func (h *LPUHandler) ListLPUs(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapLPUError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLPUs(items))
}

// GetLPU godoc
// @Summary   Get an LPU
// @Tags      lpus
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "LPU id"
// @Success   200  {object}  response.LPUResponse
// @Failure   404  {object}  pkg.HTTPError
// @Router    /lpus/{id} [get]
func (h *LPUHandler) GetLPU(c *gin.Context) {
	l, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapLPUError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLPU(l))
}

// ReplaceLPU godoc
// @Summary      Replace an LPU
// @Description  Full replace of the editable fields. History, submission metadata, revision comment and created_at are kept. A version greater than zero must match the stored one.
// @Tags         lpus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string              true  "LPU id"
// @Param        lpu  body      request.LPURequest  true  "LPU"
// @Success      200  {object}  response.LPUResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /lpus/{id} [put]
func (h *LPUHandler) ReplaceLPU(c *gin.Context) {
	var payload request.LPURequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidLPUPayload)
		return
	}

	updated, err := h.usecase.Replace(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		respondError(c, mapLPUError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLPU(updated))
}

// DeleteLPU godoc
// @Summary   Delete an LPU
// @Tags      lpus
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "LPU id"
// @Success   200  {object}  response.MessageResponse
// @Failure   404  {object}  pkg.HTTPError
// @Router    /lpus/{id} [delete]
func (h *LPUHandler) DeleteLPU(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapLPUError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "LPU removida com sucesso"})
}

// OpenQuotation godoc
// @Summary      Open an LPU for quotation
// @Description  Invites the given registered suppliers and mints the quote token.
// @Tags         quotation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                        true  "LPU id"
// @Param        body  body      request.OpenQuotationRequest  true  "Invitation"
// @Success      200   {object}  response.LPUResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /lpus/{id}/quotation [post]
func (h *LPUHandler) OpenQuotation(c *gin.Context) {
	var payload request.OpenQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	l, err := h.usecase.OpenQuotation(c.Request.Context(), c.Param("id"), payload.SupplierIDs, payload.QuotePermissions.ToEntity())
	if err != nil {
		respondError(c, mapLPUError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLPU(l))
}

// CancelQuotation godoc
// @Summary   Cancel an open quotation
// @Tags      quotation
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "LPU id"
// @Success   200  {object}  response.LPUResponse
// @Failure   400  {object}  pkg.HTTPError
// @Failure   404  {object}  pkg.HTTPError
// @Router    /lpus/{id}/quotation [delete]
func (h *LPUHandler) CancelQuotation(c *gin.Context) {
	l, err := h.usecase.CancelQuotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapLPUError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLPU(l))
}

// RequestRevision godoc
// @Summary      Request a new revision
// @Description  Snapshots the current submission into history (when submitted) and reopens the LPU for the supplier.
// @Tags         quotation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true   "LPU id"
// @Param        body  body      request.RevisionRequest  false  "Comment"
// @Success      200   {object}  response.LPUResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /lpus/{id}/revision [post]
func (h *LPUHandler) RequestRevision(c *gin.Context) {
	var payload request.RevisionRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	l, err := h.usecase.RequestRevision(c.Request.Context(), c.Param("id"), payload.Comment)
	if err != nil {
		respondError(c, mapLPUError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLPU(l))
}

// ApproveLPU godoc
// @Summary      Approve an LPU
// @Description  Approves the current prices, or restores and approves the given revision.
// @Tags         quotation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true   "LPU id"
// @Param        body  body      request.ApproveRequest  false  "Revision to restore"
// @Success      200   {object}  response.LPUResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /lpus/{id}/approve [post]
func (h *LPUHandler) ApproveLPU(c *gin.Context) {
	var payload request.ApproveRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	l, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), payload.RevisionNumber)
	if err != nil {
		respondError(c, mapLPUError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLPU(l))
}

func mapLPUError(err error) *pkg.AppError {
	if appErr, ok := mapQuotationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrLPUIDMismatch):
		return pkg.NewDomainErrorSimple("LPU_ID_MISMATCH", "O id do corpo difere do id da URL", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLPUID), errors.Is(err, usecase.ErrInvalidWorkID),
		errors.Is(err, usecase.ErrInvalidStatusValue):
		return errInvalidLPUPayload
	case errors.Is(err, usecase.ErrNoInvitedSuppliers):
		return pkg.NewDomainErrorSimple("NO_INVITED_SUPPLIERS", "Informe ao menos um fornecedor convidado", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvitedSupplierNotFound):
		return pkg.NewDomainErrorSimple("INVITED_SUPPLIER_NOT_FOUND", "Fornecedor convidado não cadastrado", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkNotFound):
		return pkg.NewDomainErrorSimple("WORK_NOT_FOUND", "Obra não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLPUAlreadyExists):
		return pkg.NewDomainErrorSimple("LPU_ALREADY_EXISTS", "Já existe uma LPU com este id", http.StatusConflict)
	default:
		return internalError(err)
	}
}
