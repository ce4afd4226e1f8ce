package identity

import (
	"context"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/infrastructure/config"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// LocalIdentity is attached to every request when authentication is disabled.
var LocalIdentity = entities.Identity{
	UID:   "local-dev",
	Email: "dev@localhost",
	Name:  "Desenvolvimento Local",
}

// DisabledVerifier accepts any token. Config validation keeps it out of production.
type DisabledVerifier struct{}

var _ interfaces.IIdentityVerifier = DisabledVerifier{}

func (DisabledVerifier) Verify(context.Context, string) (entities.Identity, error) {
	return LocalIdentity, nil
}

// NewVerifier picks the verifier matching the auth configuration.
func NewVerifier(cfg config.AuthConfig) interfaces.IIdentityVerifier {
	switch {
	case cfg.Disabled:
		logrus.Warn("[identity] authentication disabled, every request runs as local-dev")
		return DisabledVerifier{}
	case cfg.FirebaseProjectID != "":
		logrus.Infof("[identity] verifying firebase tokens project=%s", cfg.FirebaseProjectID)
		return NewFirebaseVerifier(cfg.FirebaseProjectID)
	default:
		logrus.Info("[identity] verifying HS256 tokens")
		return NewJWTVerifier(cfg.JWTSecret)
	}
}
