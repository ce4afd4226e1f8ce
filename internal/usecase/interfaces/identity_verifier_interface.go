package interfaces

import (
	"context"
	"errors"
	"gestao_obras/internal/domain/entities"
)

var ErrInvalidIdentityToken = errors.New("invalid identity token")

// IIdentityVerifier validates bearer tokens of internal users.
// Any rejection wraps ErrInvalidIdentityToken.
type IIdentityVerifier interface {
	Verify(ctx context.Context, rawToken string) (entities.Identity, error)
}
