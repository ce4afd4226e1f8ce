package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"gestao_obras/internal/adapter/http/handlers/mocks"
	"gestao_obras/internal/adapter/http/middleware"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newExportRouter(t *testing.T) (*gin.Engine, *mocks.MockILPUExportUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockILPUExportUseCase(ctrl)
	h := NewExportHandler(uc)

	r := gin.New()
	r.GET("/lpus/:id/export", h.ExportLPU)
	return r, uc
}

func TestExportHandler_ExportLPU(t *testing.T) {
	t.Run("defaults to xlsx", func(t *testing.T) {
		r, uc := newExportRouter(t)
		uc.EXPECT().Export(gomock.Any(), "lpu-1", "xlsx").Return(usecase.ExportedDocument{
			FileName:    "lpu-lpu-1.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     []byte("PK"),
		}, nil)

		w := performRequest(r, http.MethodGet, "/lpus/lpu-1/export", "")
		if w.Code != http.StatusOK || w.Body.String() != "PK" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="lpu-lpu-1.xlsx"` {
			t.Fatalf("unexpected disposition %q", got)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		r, uc := newExportRouter(t)
		uc.EXPECT().Export(gomock.Any(), "lpu-1", "csv").Return(usecase.ExportedDocument{}, fmt.Errorf("%w: %q", usecase.ErrUnsupportedExportFormat, "csv"))

		w := performRequest(r, http.MethodGet, "/lpus/lpu-1/export?format=csv", "")
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "UNSUPPORTED_EXPORT_FORMAT" {
			t.Fatalf("expected 400, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newExportRouter(t)
		uc.EXPECT().Export(gomock.Any(), "lpu-9", "pdf").Return(usecase.ExportedDocument{}, usecase.ErrLPUNotFound)

		if w := performRequest(r, http.MethodGet, "/lpus/lpu-9/export?format=pdf", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestIdentityHandler_Me(t *testing.T) {
	h := NewIdentityHandler()

	t.Run("without identity", func(t *testing.T) {
		r := gin.New()
		r.GET("/me", h.Me)
		if w := performRequest(r, http.MethodGet, "/me", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("with identity", func(t *testing.T) {
		r := gin.New()
		r.GET("/me", func(c *gin.Context) {
			c.Set(middleware.IdentityKey, entities.Identity{UID: "u1", Email: "u1@obra.com"})
			c.Next()
		}, h.Me)

		w := performRequest(r, http.MethodGet, "/me", "")
		if w.Code != http.StatusOK || w.Body.String() != `{"uid":"u1","email":"u1@obra.com","name":"","picture":""}` {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})
}
