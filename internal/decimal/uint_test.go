package decimal

import (
	"strings"
	"testing"
)

func TestAdd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"1", "1", "2"},
		{"999999999", "1", "1000000000"},
		{"123456789012345678901234567890", "1", "123456789012345678901234567891"},
	}
	for _, tt := range tests {
		a, _ := FromString(tt.a)
		b, _ := FromString(tt.b)
		got := a.Add(b).String()
		if got != tt.want {
			t.Errorf("%s + %s = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSub(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b, want string
	}{
		{"5", "3", "2"},
		{"1000000000", "1", "999999999"},
		{"100", "100", "0"},
	}
	for _, tt := range tests {
		a, _ := FromString(tt.a)
		b, _ := FromString(tt.b)
		got, err := a.Sub(b)
		if err != nil {
			t.Fatalf("Sub(%s, %s): unexpected error: %v", tt.a, tt.b, err)
		}
		if got.String() != tt.want {
			t.Errorf("%s - %s = %s, want %s", tt.a, tt.b, got.String(), tt.want)
		}
	}
}

func TestSub_PreconditionViolation(t *testing.T) {
	t.Parallel()
	SetValidityChecks(true)
	defer SetValidityChecks(false)

	a := FromUint64(1)
	b := FromUint64(2)
	if _, err := a.Sub(b); err == nil {
		t.Error("expected an error when subtracting a larger value from a smaller one")
	}
}

func TestMul_SchoolbookAndFFTAgree(t *testing.T) {
	t.Parallel()
	a, _ := FromString(strings.Repeat("9", 40))
	b, _ := FromString(strings.Repeat("7", 40))

	SetThreshold(4)
	small, err := a.Mul(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	SetThreshold(DefaultThreshold)
	large, err := a.Mul(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !small.Equal(large) {
		t.Errorf("dispatch threshold changed the result: %s != %s", small, large)
	}
}

func TestDivMod(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b, q, r string
	}{
		{"10", "3", "3", "1"},
		{"100", "10", "10", "0"},
		{"0", "5", "0", "0"},
		{"123456789012345678901234567890", "987654321", "124999998873437499901", "574845669"},
	}
	for _, tt := range tests {
		a, _ := FromString(tt.a)
		b, _ := FromString(tt.b)
		q, r, err := a.DivMod(b)
		if err != nil {
			t.Fatalf("DivMod(%s, %s): unexpected error: %v", tt.a, tt.b, err)
		}
		if q.String() != tt.q || r.String() != tt.r {
			t.Errorf("%s / %s = (%s, %s), want (%s, %s)", tt.a, tt.b, q, r, tt.q, tt.r)
		}
	}
}

func TestDivMod_ByZero(t *testing.T) {
	t.Parallel()
	SetValidityChecks(true)
	defer SetValidityChecks(false)

	a := FromUint64(10)
	if _, _, err := a.DivMod(Zero()); err == nil {
		t.Error("expected an error dividing by zero")
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()
	a, _ := FromString("100")
	b, _ := FromString("200")
	if a.Compare(b) >= 0 {
		t.Error("expected 100 < 200")
	}
	if b.Compare(a) <= 0 {
		t.Error("expected 200 > 100")
	}
	if a.Compare(a) != 0 {
		t.Error("expected 100 == 100")
	}
}

func TestFromUint64RoundTrip(t *testing.T) {
	t.Parallel()
	for _, n := range []uint64{0, 1, 42, 1<<32 - 1, 1 << 63} {
		u := FromUint64(n)
		got, ok := u.ToUint64()
		if !ok || got != n {
			t.Errorf("FromUint64(%d).ToUint64() = (%d, %v), want (%d, true)", n, got, ok, n)
		}
	}
}

func TestFromString_Invalid(t *testing.T) {
	t.Parallel()
	if _, err := FromString("12a34"); err == nil {
		t.Error("expected an error for a non-digit string")
	}
}

func TestMove(t *testing.T) {
	t.Parallel()
	a, _ := FromString("12345")
	moved := Move(&a)
	if moved.String() != "12345" {
		t.Errorf("Move result = %s, want 12345", moved)
	}
	if !a.IsZero() {
		t.Error("source should be canonically zero after Move")
	}
}
