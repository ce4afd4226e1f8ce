package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"
	mock_interfaces "gestao_obras/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(verifier interfaces.IIdentityVerifier) *gin.Engine {
	r := gin.New()
	r.Use(AuthRequired(verifier))
	r.GET("/me", func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, id.UID)
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mock_interfaces.NewMockIIdentityVerifier(ctrl)
	r := newAuthRouter(verifier)

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		if w := do(""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		if w := do("Basic abc"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		verifier.EXPECT().Verify(gomock.Any(), "bad").Return(entities.Identity{}, fmt.Errorf("%w: expired", interfaces.ErrInvalidIdentityToken))
		if w := do("Bearer bad"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("verifier down", func(t *testing.T) {
		verifier.EXPECT().Verify(gomock.Any(), "tok").Return(entities.Identity{}, errors.New("certs"))
		if w := do("Bearer tok"); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		verifier.EXPECT().Verify(gomock.Any(), "tok").Return(entities.Identity{UID: "u1"}, nil)
		w := do("bearer tok")
		if w.Code != http.StatusOK || w.Body.String() != "u1" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 1, 2)
	r := gin.New()
	r.Use(rl.Middleware())
	r.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := do("10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
	if code := do("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
	if code := do("10.0.0.2"); code != http.StatusOK {
		t.Fatalf("other ip should not be throttled, got %d", code)
	}
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(ctx, 10, 1)
	rl.now = func() time.Time { return now }
	rl.getVisitor("a")
	now = now.Add(2 * time.Minute)
	rl.getVisitor("b")
	now = now.Add(2 * time.Minute)

	rl.evictIdle()
	if _, ok := rl.visitors["a"]; ok {
		t.Fatalf("expected idle visitor to be evicted")
	}
	if _, ok := rl.visitors["b"]; !ok {
		t.Fatalf("expected recent visitor to be kept")
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(RequestIDHeader, "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Header().Get(RequestIDHeader) != "req-1" || w.Body.String() != "req-1" {
			t.Fatalf("unexpected request id: %q", w.Header().Get(RequestIDHeader))
		}
	})

	t.Run("mints one", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if len(w.Header().Get(RequestIDHeader)) != 36 {
			t.Fatalf("expected uuid request id, got %q", w.Header().Get(RequestIDHeader))
		}
	})
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
