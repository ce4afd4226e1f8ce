package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"gestao_obras/internal/usecase"
	"gestao_obras/pkg"

	"github.com/gin-gonic/gin"
)

const defaultExportFormat = "xlsx"

type ExportHandler struct {
	usecase usecase.ILPUExportUseCase
}

func NewExportHandler(uc usecase.ILPUExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// ExportLPU godoc
// @Summary      Export an LPU
// @Description  Downloads the quotation as a spreadsheet or a PDF. While waiting for the supplier the document carries the access link.
// @Tags         lpus
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id      path   string  true   "LPU id"
// @Param        format  query  string  false  "xlsx or pdf"  Enums(xlsx, pdf)
// @Success      200
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /lpus/{id}/export [get]
func (h *ExportHandler) ExportLPU(c *gin.Context) {
	doc, err := h.usecase.Export(c.Request.Context(), c.Param("id"), c.DefaultQuery("format", defaultExportFormat))
	if err != nil {
		respondError(c, mapExportError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

func mapExportError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrUnsupportedExportFormat) {
		return pkg.NewDomainErrorSimple("UNSUPPORTED_EXPORT_FORMAT", "Formato de exportação não suportado. Use xlsx ou pdf.", http.StatusBadRequest)
	}
	return mapLPUError(err)
}
