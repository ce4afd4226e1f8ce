package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gestao_obras/internal/adapter/http/handlers/mocks"
	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newLPURouter(t *testing.T) (*gin.Engine, *mocks.MockILPUUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockILPUUseCase(ctrl)
	h := NewLPUHandler(uc)

	r := gin.New()
	r.POST("/lpus", h.CreateLPU)
	r.GET("/lpus", h.ListLPUs)
	r.GET("/lpus/:id", h.GetLPU)
	r.PUT("/lpus/:id", h.ReplaceLPU)
	r.DELETE("/lpus/:id", h.DeleteLPU)
	r.POST("/lpus/:id/quotation", h.OpenQuotation)
	r.DELETE("/lpus/:id/quotation", h.CancelQuotation)
	r.POST("/lpus/:id/revision", h.RequestRevision)
	r.POST("/lpus/:id/approve", h.ApproveLPU)
	return r, uc
}

func TestLPUHandler_CreateLPU(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newLPURouter(t)
		w := performRequest(r, http.MethodPost, "/lpus", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing work id", func(t *testing.T) {
		r, _ := newLPURouter(t)
		w := performRequest(r, http.MethodPost, "/lpus", `{"id":"lpu-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("work not found", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LPU{}, usecase.ErrWorkNotFound)

		w := performRequest(r, http.MethodPost, "/lpus", `{"id":"lpu-1","work_id":"w1"}`)
		if w.Code != http.StatusNotFound || decodeError(t, w).Code != "WORK_NOT_FOUND" {
			t.Fatalf("expected 404 WORK_NOT_FOUND, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LPU{}, usecase.ErrLPUAlreadyExists)

		w := performRequest(r, http.MethodPost, "/lpus", `{"id":"lpu-1","work_id":"w1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.LPU) (entities.LPU, error) {
				if l.ID != "lpu-1" || l.WorkID != "w1" || l.Prices["1.1"] != 5 {
					t.Fatalf("unexpected lpu: %+v", l)
				}
				l.Status = entities.LPUStatusDraft
				l.Version = 1
				return l, nil
			},
		)

		w := performRequest(r, http.MethodPost, "/lpus", `{"id":"lpu-1","work_id":"w1","prices":{"1.1":5}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["status"] != "draft" || body["version"].(float64) != 1 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestLPUHandler_ListAndGet(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().List(gomock.Any()).Return([]entities.LPU{{ID: "a"}, {ID: "b"}}, nil)

		w := performRequest(r, http.MethodGet, "/lpus", "")
		var body []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
			t.Fatalf("unexpected list body: %s", w.Body.String())
		}
	})

	t.Run("list error", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		w := performRequest(r, http.MethodGet, "/lpus", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if decodeError(t, w).Message == "db" {
			t.Fatalf("internal error leaked to client")
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.LPU{}, usecase.ErrLPUNotFound)

		w := performRequest(r, http.MethodGet, "/lpus/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("corrupt status", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "lpu-1").Return(entities.LPU{}, fmt.Errorf("%w: %q", usecase.ErrInvalidLPUStatus, "closed"))

		w := performRequest(r, http.MethodGet, "/lpus/lpu-1", "")
		if w.Code != http.StatusInternalServerError || decodeError(t, w).Code != "LPU_DATA_INTEGRITY" {
			t.Fatalf("expected 500 LPU_DATA_INTEGRITY, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestLPUHandler_ReplaceLPU(t *testing.T) {
	t.Run("id mismatch", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().Replace(gomock.Any(), "lpu-1", gomock.Any()).Return(entities.LPU{}, usecase.ErrLPUIDMismatch)

		w := performRequest(r, http.MethodPut, "/lpus/lpu-1", `{"id":"lpu-2","work_id":"w1"}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "LPU_ID_MISMATCH" {
			t.Fatalf("expected 400 LPU_ID_MISMATCH, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown status rejected by binding", func(t *testing.T) {
		r, _ := newLPURouter(t)
		w := performRequest(r, http.MethodPut, "/lpus/lpu-1", `{"id":"lpu-1","work_id":"w1","status":"closed"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stale version", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().Replace(gomock.Any(), "lpu-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, l entities.LPU) (entities.LPU, error) {
				if l.Version != 2 {
					t.Fatalf("expected version 2, got %d", l.Version)
				}
				return entities.LPU{}, usecase.ErrConcurrentModification
			},
		)

		w := performRequest(r, http.MethodPut, "/lpus/lpu-1", `{"id":"lpu-1","work_id":"w1","version":2}`)
		if w.Code != http.StatusConflict || decodeError(t, w).Code != "LPU_CONCURRENT_MODIFICATION" {
			t.Fatalf("expected 409, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().Replace(gomock.Any(), "lpu-1", gomock.Any()).Return(entities.LPU{ID: "lpu-1", Status: entities.LPUStatusWaiting}, nil)

		w := performRequest(r, http.MethodPut, "/lpus/lpu-1", `{"id":"lpu-1","work_id":"w1","status":"waiting"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLPUHandler_DeleteLPU(t *testing.T) {
	r, uc := newLPURouter(t)
	uc.EXPECT().Delete(gomock.Any(), "lpu-1").Return(nil)
	uc.EXPECT().Delete(gomock.Any(), "lpu-2").Return(usecase.ErrLPUNotFound)

	if w := performRequest(r, http.MethodDelete, "/lpus/lpu-1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := performRequest(r, http.MethodDelete, "/lpus/lpu-2", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestLPUHandler_Quotation(t *testing.T) {
	t.Run("open requires suppliers", func(t *testing.T) {
		r, _ := newLPURouter(t)
		w := performRequest(r, http.MethodPost, "/lpus/lpu-1/quotation", `{"supplier_ids":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("open with unknown supplier", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().OpenQuotation(gomock.Any(), "lpu-1", []string{"s9"}, gomock.Nil()).
			Return(entities.LPU{}, fmt.Errorf("%w: s9", usecase.ErrInvitedSupplierNotFound))

		w := performRequest(r, http.MethodPost, "/lpus/lpu-1/quotation", `{"supplier_ids":["s9"]}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "INVITED_SUPPLIER_NOT_FOUND" {
			t.Fatalf("expected 400 INVITED_SUPPLIER_NOT_FOUND, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("open success", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().OpenQuotation(gomock.Any(), "lpu-1", []string{"s1", "s2"}, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ []string, perms *entities.QuotePermissions) (entities.LPU, error) {
				if perms == nil || !perms.AllowAddItems {
					t.Fatalf("expected permissions, got %+v", perms)
				}
				return entities.LPU{ID: "lpu-1", Status: entities.LPUStatusWaiting, QuoteToken: "ABC"}, nil
			},
		)

		w := performRequest(r, http.MethodPost, "/lpus/lpu-1/quotation", `{"supplier_ids":["s1","s2"],"quote_permissions":{"allow_add_items":true}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel after submission", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().CancelQuotation(gomock.Any(), "lpu-1").Return(entities.LPU{}, usecase.ErrInvalidTransition)

		w := performRequest(r, http.MethodDelete, "/lpus/lpu-1/quotation", "")
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "INVALID_TRANSITION" {
			t.Fatalf("expected 400 INVALID_TRANSITION, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestLPUHandler_RequestRevision(t *testing.T) {
	t.Run("comment forwarded", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().RequestRevision(gomock.Any(), "lpu-1", "fix unit price").Return(entities.LPU{ID: "lpu-1"}, nil)

		w := performRequest(r, http.MethodPost, "/lpus/lpu-1/revision", `{"comment":"fix unit price"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().RequestRevision(gomock.Any(), "lpu-1", "").Return(entities.LPU{ID: "lpu-1"}, nil)

		if w := performRequest(r, http.MethodPost, "/lpus/lpu-1/revision", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newLPURouter(t)
		if w := performRequest(r, http.MethodPost, "/lpus/lpu-1/revision", `{"comment":`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestLPUHandler_ApproveLPU(t *testing.T) {
	t.Run("without body approves current", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().Approve(gomock.Any(), "lpu-1", gomock.Nil()).Return(entities.LPU{ID: "lpu-1", Status: entities.LPUStatusApproved}, nil)

		if w := performRequest(r, http.MethodPost, "/lpus/lpu-1/approve", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("revision not found", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().Approve(gomock.Any(), "lpu-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, rev *int) (entities.LPU, error) {
				if rev == nil || *rev != 3 {
					t.Fatalf("expected revision 3, got %v", rev)
				}
				return entities.LPU{}, &usecase.RevisionNotFoundError{Number: 3}
			},
		)

		w := performRequest(r, http.MethodPost, "/lpus/lpu-1/approve", `{"revision_number":3}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if msg := decodeError(t, w).Message; msg != "Revisão 3 não encontrada" {
			t.Fatalf("unexpected message %q", msg)
		}
	})

	t.Run("non positive revision is not found", func(t *testing.T) {
		for _, n := range []int{0, -1} {
			r, uc := newLPURouter(t)
			uc.EXPECT().Approve(gomock.Any(), "lpu-1", gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, rev *int) (entities.LPU, error) {
					if rev == nil || *rev != n {
						t.Fatalf("expected revision %d, got %v", n, rev)
					}
					return entities.LPU{}, &usecase.RevisionNotFoundError{Number: n}
				},
			)

			body := fmt.Sprintf(`{"revision_number":%d}`, n)
			if w := performRequest(r, http.MethodPost, "/lpus/lpu-1/approve", body); w.Code != http.StatusNotFound {
				t.Fatalf("revision %d: expected 404, got %d", n, w.Code)
			}
		}
	})

	t.Run("draft cannot be approved", func(t *testing.T) {
		r, uc := newLPURouter(t)
		uc.EXPECT().Approve(gomock.Any(), "lpu-1", gomock.Nil()).Return(entities.LPU{}, usecase.ErrInvalidTransition)

		if w := performRequest(r, http.MethodPost, "/lpus/lpu-1/approve", "{}"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
