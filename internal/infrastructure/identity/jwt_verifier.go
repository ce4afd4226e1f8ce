package identity

import (
	"context"
	"fmt"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier accepts HS256 tokens signed with a shared secret, carrying the same
// claims as a Firebase ID token. Used by environments without Firebase.
type JWTVerifier struct {
	secret []byte
	now    func() time.Time
}

var _ interfaces.IIdentityVerifier = (*JWTVerifier)(nil)

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), now: time.Now}
}

func (v *JWTVerifier) Verify(_ context.Context, rawToken string) (entities.Identity, error) {
	var claims firebaseClaims
	_, err := jwt.ParseWithClaims(rawToken, &claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return entities.Identity{}, fmt.Errorf("%w: %v", interfaces.ErrInvalidIdentityToken, err)
	}

	id := claims.identity()
	if id.UID == "" {
		return entities.Identity{}, fmt.Errorf("%w: empty subject", interfaces.ErrInvalidIdentityToken)
	}
	return id, nil
}

// IssueToken signs a token for id that expires after ttl.
func (v *JWTVerifier) IssueToken(id entities.Identity, ttl time.Duration) (string, error) {
	now := v.now()
	claims := firebaseClaims{
		UserID:  id.UID,
		Email:   id.Email,
		Name:    id.Name,
		Picture: id.Picture,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
