package determinism

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIDGeneratorIsStable(t *testing.T) {
	a := NewIDGenerator("project-type").Generate("0", "Website Design")
	b := NewIDGenerator("project-type").Generate("0", "Website Design")
	if a != b {
		t.Fatalf("same inputs produced %s and %s", a, b)
	}
	if len(a) != 16 {
		t.Errorf("expected 16 hex chars, got %q", a)
	}
}

func TestIDGeneratorSeparatesNamespacesAndParts(t *testing.T) {
	g := NewIDGenerator("package")
	if g.Generate("ab", "c") == g.Generate("a", "bc") {
		t.Error("part boundaries must affect the ID")
	}
	if g.Generate("x") == NewIDGenerator("project-type").Generate("x") {
		t.Error("namespaces must affect the ID")
	}
}

func TestComputeHash(t *testing.T) {
	h := ComputeHash([]byte(`{"name":"SEO"}`))
	if h != ComputeHash([]byte(`{"name":"SEO"}`)) {
		t.Fatal("hash must be deterministic")
	}
	if len(h.Hex()) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(h.Hex()))
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		money Money
		want  string
	}{
		{NewMoneyFromInt(24000, "EUR"), "24000 EUR"},
		{NewMoneyFromInt(37500, ""), "37500"},
	}
	for _, tt := range tests {
		if got := tt.money.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}

	if got := NewMoneyFromDecimal(decimal.RequireFromString("12.5"), "USD").String(); got != "12.50 USD" {
		t.Errorf("String() = %q, want %q", got, "12.50 USD")
	}
}
