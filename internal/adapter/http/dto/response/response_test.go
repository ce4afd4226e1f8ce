package response

import (
	"encoding/json"
	"testing"
	"time"

	"gestao_obras/internal/domain/entities"
)

func TestFromLPU_EmptyCollections(t *testing.T) {
	res := FromLPU(entities.LPU{ID: "lpu-1", WorkID: "w1"})
	if res.Status != "draft" {
		t.Fatalf("expected draft status, got %q", res.Status)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, field := range []string{"invited_suppliers", "selected_items", "prices", "quantities", "history"} {
		if body[field] == nil {
			t.Fatalf("expected %s to be an empty value, got null", field)
		}
	}
	if _, ok := body["quote_token"]; ok {
		t.Fatalf("quote_token should be omitted when empty")
	}
}

func TestFromLPU(t *testing.T) {
	now := time.Now().UTC()
	l := entities.LPU{
		ID:                 "lpu-1",
		WorkID:             "w1",
		Status:             entities.LPUStatusSubmitted,
		QuoteToken:         "ABC",
		Prices:             map[string]float64{"1.1": 3},
		SubmissionMetadata: &entities.SubmissionMetadata{SignerName: "Ana", SubmissionDate: now},
		History:            []entities.LPURevision{{RevisionNumber: 1}},
		Version:            2,
		CreatedAt:          now,
	}

	res := FromLPU(l)
	if res.Status != "submitted" || res.QuoteToken != "ABC" || res.Version != 2 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.SubmissionMeta == nil || res.SubmissionMeta.SignerName != "Ana" || len(res.History) != 1 {
		t.Fatalf("unexpected submission data: %+v", res)
	}
	if got := FromLPUs([]entities.LPU{l, l}); len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got := FromLPUs(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}

func TestFromSupplierAndIdentity(t *testing.T) {
	s := FromSupplier(entities.Supplier{ID: "s1", SocialReason: "ACME", CNPJ: "123"})
	if s.ID != "s1" || s.SocialReason != "ACME" || s.CNPJ != "123" {
		t.Fatalf("unexpected supplier: %+v", s)
	}
	if got := FromSuppliers(nil); got == nil {
		t.Fatalf("expected empty non-nil slice")
	}

	id := FromIdentity(entities.Identity{UID: "u1", Email: "a@b.c"})
	if id.UID != "u1" || id.Email != "a@b.c" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}
