package middleware

import (
	"errors"
	"net/http"
	"strings"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
	"gestao_obras/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const IdentityKey = "identity"

var (
	errAuthRequired    = pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Autenticação necessária", http.StatusUnauthorized)
	errInvalidToken    = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Token de autenticação inválido ou expirado", http.StatusUnauthorized)
	errAuthUnavailable = pkg.NewDomainErrorSimple("AUTH_UNAVAILABLE", "Serviço de autenticação indisponível", http.StatusServiceUnavailable)
)

// AuthRequired verifies the bearer token and stores the caller identity in the context.
func AuthRequired(verifier interfaces.IIdentityVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, errAuthRequired)
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abortWith(c, errInvalidToken)
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, interfaces.ErrInvalidIdentityToken) {
				logrus.Debugf("[auth][middleware] rejected token path=%s err=%v", c.FullPath(), err)
				abortWith(c, errInvalidToken)
				return
			}
			logrus.Errorf("[auth][middleware] verifier failure path=%s err=%v", c.FullPath(), err)
			abortWith(c, errAuthUnavailable)
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by AuthRequired.
func CurrentIdentity(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return entities.Identity{}, false
	}
	identity, ok := v.(entities.Identity)
	return identity, ok
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
