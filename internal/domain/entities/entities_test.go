package entities

import "testing"

func TestLPUStatus_IsValid(t *testing.T) {
	for _, s := range []LPUStatus{LPUStatusDraft, LPUStatusWaiting, LPUStatusSubmitted, LPUStatusApproved} {
		if !s.IsValid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	for _, s := range []LPUStatus{"", "pending", "SUBMITTED", "rejected"} {
		if s.IsValid() {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestNormalizeTaxID(t *testing.T) {
	cases := map[string]string{
		"12.345.678/0001-99": "12345678000199",
		"12345678000199":     "12345678000199",
		" 123.456.789-09 ":   "12345678909",
		"abc":                "",
		"١٢٣":                "",
	}
	for in, want := range cases {
		if got := NormalizeTaxID(in); got != want {
			t.Fatalf("NormalizeTaxID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLPU_FindRevision(t *testing.T) {
	l := LPU{History: []LPURevision{{RevisionNumber: 1}, {RevisionNumber: 2, Prices: map[string]float64{"1.1": 3}}}}

	r, ok := l.FindRevision(2)
	if !ok || r.Prices["1.1"] != 3 {
		t.Fatalf("unexpected revision: %+v ok=%v", r, ok)
	}
	if _, ok := l.FindRevision(3); ok {
		t.Fatalf("expected revision 3 to be missing")
	}
}

func TestSupplier_DisplayName(t *testing.T) {
	if got := (Supplier{ID: "s1", SocialReason: " ACME Ltda "}).DisplayName(); got != "ACME Ltda" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := (Supplier{ID: "s1"}).DisplayName(); got != "s1" {
		t.Fatalf("unexpected fallback %q", got)
	}
}
