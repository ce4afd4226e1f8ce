package routes

import (
	"net/http"

	response "gestao_obras/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, response.HealthResponse{OK: true})
	}
	rg.GET("/ping", health)
	rg.GET("/health", health)
}
