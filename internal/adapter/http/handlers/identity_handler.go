package handlers

import (
	"net/http"

	"gestao_obras/internal/adapter/http/middleware"
	response "gestao_obras/internal/adapter/http/dto/response"
	"gestao_obras/pkg"

	"github.com/gin-gonic/gin"
)

type IdentityHandler struct{}

func NewIdentityHandler() *IdentityHandler {
	return &IdentityHandler{}
}

// Me godoc
// @Summary   Current user
// @Tags      identity
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  response.IdentityResponse
// @Failure   401  {object}  pkg.HTTPError
// @Router    /me [get]
func (h *IdentityHandler) Me(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Autenticação necessária", http.StatusUnauthorized))
		return
	}
	c.JSON(http.StatusOK, response.FromIdentity(identity))
}
