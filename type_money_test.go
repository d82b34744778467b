package cashcast

import "testing"

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("-950.50", "EUR")
	if err != nil {
		t.Fatalf("ParseMoney() error = %v", err)
	}
	if got := m.AsFloat(); got != -950.5 {
		t.Errorf("AsFloat() = %g, want -950.5", got)
	}
	if _, err := ParseMoney("not-a-number", "EUR"); err == nil {
		t.Error("expected an error for a non numeric amount")
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(0, "EUR").SignedString(); got != "-" {
		t.Errorf("zero = %q, want \"-\"", got)
	}
	if got := M(12.5, "EUR").SignedString(); got[0] != '+' {
		t.Errorf("positive = %q, want a leading +", got)
	}
}
