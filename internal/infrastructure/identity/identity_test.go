package identity

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/infrastructure/config"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProject = "gestao-obras-test"

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func selfSignedPEM(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "securetoken.system.gserviceaccount.com"},
		NotBefore:    testNow.Add(-time.Hour),
		NotAfter:     testNow.Add(24 * time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))
}

func certsServer(t *testing.T, certs map[string]string, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Cache-Control", "public, max-age=600, must-revalidate")
		_ = json.NewEncoder(w).Encode(certs)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func firebaseToken(t *testing.T, key *rsa.PrivateKey, kid string, mutate func(*firebaseClaims)) string {
	t.Helper()
	claims := firebaseClaims{
		UserID: "uid-1",
		Email:  "ana@obra.com",
		Name:   "Ana",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    firebaseIssuerPrefix + testProject,
			Audience:  jwt.ClaimStrings{testProject},
			Subject:   "uid-1",
			IssuedAt:  jwt.NewNumericDate(testNow.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
	}
	if mutate != nil {
		mutate(&claims)
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = kid
	raw, err := tok.SignedString(key)
	require.NoError(t, err)
	return raw
}

func newFirebaseForTest(t *testing.T, certs map[string]string) (*FirebaseVerifier, *atomic.Int32) {
	t.Helper()
	hits := &atomic.Int32{}
	srv := certsServer(t, certs, hits)
	v := NewFirebaseVerifier(testProject)
	v.certsURL = srv.URL
	v.client = srv.Client()
	v.now = func() time.Time { return testNow }
	return v, hits
}

func TestFirebaseVerifier_Verify(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	t.Run("valid token and cached certificates", func(t *testing.T) {
		v, hits := newFirebaseForTest(t, map[string]string{"k1": selfSignedPEM(t, key)})

		for i := 0; i < 2; i++ {
			id, err := v.Verify(context.Background(), firebaseToken(t, key, "k1", nil))
			require.NoError(t, err)
			assert.Equal(t, entities.Identity{UID: "uid-1", Email: "ana@obra.com", Name: "Ana"}, id)
		}
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("expired cache is refreshed", func(t *testing.T) {
		v, hits := newFirebaseForTest(t, map[string]string{"k1": selfSignedPEM(t, key)})
		_, err := v.Verify(context.Background(), firebaseToken(t, key, "k1", nil))
		require.NoError(t, err)

		later := testNow.Add(11 * time.Minute)
		v.now = func() time.Time { return later }
		_, err = v.Verify(context.Background(), firebaseToken(t, key, "k1", nil))
		require.NoError(t, err)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("subject is used without user_id", func(t *testing.T) {
		v, _ := newFirebaseForTest(t, map[string]string{"k1": selfSignedPEM(t, key)})
		id, err := v.Verify(context.Background(), firebaseToken(t, key, "k1", func(c *firebaseClaims) { c.UserID = "" }))
		require.NoError(t, err)
		assert.Equal(t, "uid-1", id.UID)
	})

	rejected := map[string]func(*firebaseClaims){
		"wrong audience": func(c *firebaseClaims) { c.Audience = jwt.ClaimStrings{"other"} },
		"wrong issuer":   func(c *firebaseClaims) { c.Issuer = "https://evil.example" },
		"expired":        func(c *firebaseClaims) { c.ExpiresAt = jwt.NewNumericDate(testNow.Add(-time.Second)) },
		"empty subject":  func(c *firebaseClaims) { c.Subject = "" },
	}
	for name, mutate := range rejected {
		t.Run(name, func(t *testing.T) {
			v, _ := newFirebaseForTest(t, map[string]string{"k1": selfSignedPEM(t, key)})
			_, err := v.Verify(context.Background(), firebaseToken(t, key, "k1", mutate))
			assert.ErrorIs(t, err, interfaces.ErrInvalidIdentityToken)
		})
	}

	t.Run("signature from another key", func(t *testing.T) {
		v, _ := newFirebaseForTest(t, map[string]string{"k1": selfSignedPEM(t, key)})
		_, err := v.Verify(context.Background(), firebaseToken(t, other, "k1", nil))
		assert.ErrorIs(t, err, interfaces.ErrInvalidIdentityToken)
	})

	t.Run("unknown kid", func(t *testing.T) {
		v, _ := newFirebaseForTest(t, map[string]string{"k1": selfSignedPEM(t, key)})
		_, err := v.Verify(context.Background(), firebaseToken(t, key, "k9", nil))
		assert.ErrorIs(t, err, interfaces.ErrInvalidIdentityToken)
	})

	t.Run("forged kids cannot force certificate fetches", func(t *testing.T) {
		v, hits := newFirebaseForTest(t, map[string]string{"k1": selfSignedPEM(t, key)})
		_, err := v.Verify(context.Background(), firebaseToken(t, key, "k1", nil))
		require.NoError(t, err)

		for i := 0; i < 50; i++ {
			_, err := v.Verify(context.Background(), firebaseToken(t, key, fmt.Sprintf("forged-%d", i), nil))
			assert.ErrorIs(t, err, interfaces.ErrInvalidIdentityToken)
		}
		assert.Equal(t, int32(1), hits.Load())

		_, err = v.Verify(context.Background(), firebaseToken(t, key, "k1", nil))
		require.NoError(t, err)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("rotated kid is fetched once the interval passed", func(t *testing.T) {
		v, hits := newFirebaseForTest(t, map[string]string{"k1": selfSignedPEM(t, key), "k2": selfSignedPEM(t, other)})
		_, err := v.Verify(context.Background(), firebaseToken(t, key, "k1", nil))
		require.NoError(t, err)

		_, err = v.Verify(context.Background(), firebaseToken(t, other, "k3", nil))
		assert.ErrorIs(t, err, interfaces.ErrInvalidIdentityToken)
		assert.Equal(t, int32(1), hits.Load())

		later := testNow.Add(forcedRefreshInterval + time.Second)
		v.now = func() time.Time { return later }
		_, err = v.Verify(context.Background(), firebaseToken(t, other, "k3", nil))
		assert.ErrorIs(t, err, interfaces.ErrInvalidIdentityToken)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("garbage", func(t *testing.T) {
		v, _ := newFirebaseForTest(t, map[string]string{"k1": selfSignedPEM(t, key)})
		_, err := v.Verify(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, interfaces.ErrInvalidIdentityToken)
	})

	t.Run("certificate endpoint down", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()
		v := NewFirebaseVerifier(testProject)
		v.certsURL = srv.URL
		v.now = func() time.Time { return testNow }

		_, err := v.Verify(context.Background(), firebaseToken(t, key, "k1", nil))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errCertsUnavailable))
		assert.False(t, errors.Is(err, interfaces.ErrInvalidIdentityToken))
	})
}

func TestMaxAge(t *testing.T) {
	assert.Equal(t, 19*time.Second, maxAge("public, max-age=19, must-revalidate"))
	assert.Equal(t, defaultCertsTTL, maxAge("no-cache"))
	assert.Equal(t, defaultCertsTTL, maxAge("max-age=abc"))
}

func TestJWTVerifier(t *testing.T) {
	v := NewJWTVerifier("s3cret")
	v.now = func() time.Time { return testNow }
	want := entities.Identity{UID: "u1", Email: "u1@obra.com", Name: "U1"}

	raw, err := v.IssueToken(want, time.Hour)
	require.NoError(t, err)

	got, err := v.Verify(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	t.Run("other secret", func(t *testing.T) {
		w := NewJWTVerifier("different")
		w.now = v.now
		_, err := w.Verify(context.Background(), raw)
		assert.ErrorIs(t, err, interfaces.ErrInvalidIdentityToken)
	})

	t.Run("expired", func(t *testing.T) {
		v.now = func() time.Time { return testNow.Add(2 * time.Hour) }
		_, err := v.Verify(context.Background(), raw)
		assert.ErrorIs(t, err, interfaces.ErrInvalidIdentityToken)
	})
}

func TestNewVerifier(t *testing.T) {
	assert.IsType(t, DisabledVerifier{}, NewVerifier(config.AuthConfig{Disabled: true, FirebaseProjectID: "p"}))
	assert.IsType(t, &FirebaseVerifier{}, NewVerifier(config.AuthConfig{FirebaseProjectID: "p", JWTSecret: "s"}))
	assert.IsType(t, &JWTVerifier{}, NewVerifier(config.AuthConfig{JWTSecret: "s"}))

	id, err := DisabledVerifier{}.Verify(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, LocalIdentity, id)
}
