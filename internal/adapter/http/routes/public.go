package routes

import (
	"gestao_obras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// addSupplierPortalRoutes mounts the routes reached with a quote token and tax id.
func addSupplierPortalRoutes(rg *gin.RouterGroup, h *handlers.SupplierPortalHandler) {
	supplier := rg.Group("/supplier")
	{
		supplier.POST("/login", h.Login)
		supplier.POST("/lpus/:id/submit", h.Submit)
	}
}
