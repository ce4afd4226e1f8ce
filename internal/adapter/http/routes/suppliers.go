package routes

import (
	"gestao_obras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathSuppliers = "/suppliers"

func addSupplierRoutes(rg *gin.RouterGroup, h *handlers.SupplierHandler) {
	suppliers := rg.Group(PathSuppliers)
	{
		suppliers.POST("", h.CreateSupplier)
		suppliers.GET("", h.ListSuppliers)
		suppliers.GET("/:id", h.GetSupplier)
		suppliers.PUT("/:id", h.UpdateSupplier)
		suppliers.DELETE("/:id", h.DeleteSupplier)
	}
}
