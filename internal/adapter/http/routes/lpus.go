package routes

import (
	"gestao_obras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathLPUs = "/lpus"

func addLPURoutes(rg *gin.RouterGroup, lpuHandler *handlers.LPUHandler, exportHandler *handlers.ExportHandler) {
	lpus := rg.Group(PathLPUs)
	{
		lpus.POST("", lpuHandler.CreateLPU)
		lpus.GET("", lpuHandler.ListLPUs)
		lpus.GET("/:id", lpuHandler.GetLPU)
		lpus.PUT("/:id", lpuHandler.ReplaceLPU)
		lpus.DELETE("/:id", lpuHandler.DeleteLPU)

		// Quotation cycle.
		lpus.POST("/:id/quotation", lpuHandler.OpenQuotation)
		lpus.DELETE("/:id/quotation", lpuHandler.CancelQuotation)
		lpus.POST("/:id/revision", lpuHandler.RequestRevision)
		lpus.POST("/:id/approve", lpuHandler.ApproveLPU)

		lpus.GET("/:id/export", exportHandler.ExportLPU)
	}
}
