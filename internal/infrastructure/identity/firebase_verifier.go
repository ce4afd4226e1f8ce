package identity

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	GoogleSecureTokenCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"
	firebaseIssuerPrefix      = "https://securetoken.google.com/"
	defaultCertsTTL           = time.Hour

	// While the cache is fresh an unseen kid may force at most one fetch per interval.
	forcedRefreshInterval = time.Minute
)

var errCertsUnavailable = errors.New("firebase signing certificates unavailable")

type firebaseClaims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

func (c firebaseClaims) identity() entities.Identity {
	uid := c.UserID
	if uid == "" {
		uid = c.Subject
	}
	return entities.Identity{UID: uid, Email: c.Email, Name: c.Name, Picture: c.Picture}
}

// FirebaseVerifier checks Firebase Auth ID tokens (RS256) against Google's public
// certificates, which are cached for the max-age the endpoint advertises.
type FirebaseVerifier struct {
	projectID string
	certsURL  string
	client    *http.Client
	now       func() time.Time

	mu          sync.Mutex
	keys        map[string]*rsa.PublicKey
	expires     time.Time
	lastRefresh time.Time
}

var _ interfaces.IIdentityVerifier = (*FirebaseVerifier)(nil)

func NewFirebaseVerifier(projectID string) *FirebaseVerifier {
	return &FirebaseVerifier{
		projectID: projectID,
		certsURL:  GoogleSecureTokenCertsURL,
		client:    &http.Client{Timeout: 10 * time.Second},
		now:       time.Now,
	}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, rawToken string) (entities.Identity, error) {
	var claims firebaseClaims
	_, err := jwt.ParseWithClaims(rawToken, &claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("missing kid header")
		}
		return v.publicKey(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(firebaseIssuerPrefix+v.projectID),
		jwt.WithAudience(v.projectID),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		if errors.Is(err, errCertsUnavailable) {
			return entities.Identity{}, err
		}
		return entities.Identity{}, fmt.Errorf("%w: %v", interfaces.ErrInvalidIdentityToken, err)
	}
	if claims.Subject == "" {
		return entities.Identity{}, fmt.Errorf("%w: empty subject", interfaces.ErrInvalidIdentityToken)
	}
	return claims.identity(), nil
}

// publicKey returns the key for kid, refreshing the cache when it expired or
// when Google rotated to a kid we have not seen yet. Unseen kids against a fresh
// cache are throttled to one fetch per forcedRefreshInterval.
func (v *FirebaseVerifier) publicKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	if now.Before(v.expires) {
		if key, ok := v.keys[kid]; ok {
			return key, nil
		}
		if now.Sub(v.lastRefresh) < forcedRefreshInterval {
			return nil, fmt.Errorf("unknown kid %q", kid)
		}
	}
	v.lastRefresh = now
	if err := v.refresh(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", errCertsUnavailable, err)
	}
	key, ok := v.keys[kid]
	if !ok {
		return nil, fmt.Errorf("unknown kid %q", kid)
	}
	return key, nil
}

func (v *FirebaseVerifier) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.certsURL, nil)
	if err != nil {
		return err
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("certs endpoint returned %d", resp.StatusCode)
	}

	var pems map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&pems); err != nil {
		return err
	}
	keys := make(map[string]*rsa.PublicKey, len(pems))
	for kid, pem := range pems {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
		if err != nil {
			logrus.Warnf("[identity][firebase] skipping certificate kid=%s err=%v", kid, err)
			continue
		}
		keys[kid] = key
	}
	if len(keys) == 0 {
		return errors.New("no usable certificates")
	}

	v.keys = keys
	v.expires = v.now().Add(maxAge(resp.Header.Get("Cache-Control")))
	logrus.Debugf("[identity][firebase] certificates refreshed count=%d expires=%s", len(keys), v.expires.Format(time.RFC3339))
	return nil
}

func maxAge(cacheControl string) time.Duration {
	for _, directive := range strings.Split(cacheControl, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(directive), "=")
		if !ok || !strings.EqualFold(name, "max-age") {
			continue
		}
		if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultCertsTTL
}
