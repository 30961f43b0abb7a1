package bigsigned

import "testing"

func TestFromString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    string
		wantNeg bool
	}{
		{"0", "0", false},
		{"-0", "0", false},
		{"7", "7", false},
		{"-7", "-7", true},
		{"+7", "7", false},
		{"-123456789012345678901234567890", "-123456789012345678901234567890", true},
	}
	for _, tt := range tests {
		x, err := FromString(tt.in)
		if err != nil {
			t.Fatalf("FromString(%q): unexpected error: %v", tt.in, err)
		}
		if x.String() != tt.want {
			t.Errorf("FromString(%q).String() = %s, want %s", tt.in, x.String(), tt.want)
		}
		if x.IsNegative() != tt.wantNeg {
			t.Errorf("FromString(%q).IsNegative() = %v, want %v", tt.in, x.IsNegative(), tt.wantNeg)
		}
	}
}

func TestFromString_Invalid(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "-", "+", "-abc", "1.5"} {
		if _, err := FromString(in); err == nil {
			t.Errorf("FromString(%q): expected error, got none", in)
		}
	}
}

func TestAdd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b, want string
	}{
		{"3", "4", "7"},
		{"-3", "-4", "-7"},
		{"5", "-3", "2"},
		{"-5", "3", "-2"},
		{"3", "-3", "0"},
		{"-3", "3", "0"},
	}
	for _, tt := range tests {
		a, _ := FromString(tt.a)
		b, _ := FromString(tt.b)
		got := a.Add(b)
		if got.String() != tt.want {
			t.Errorf("%s + %s = %s, want %s", tt.a, tt.b, got.String(), tt.want)
		}
	}
}

func TestSub(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b, want string
	}{
		{"3", "4", "-1"},
		{"-3", "-4", "1"},
		{"5", "3", "2"},
		{"3", "5", "-2"},
	}
	for _, tt := range tests {
		a, _ := FromString(tt.a)
		b, _ := FromString(tt.b)
		got := a.Sub(b)
		if got.String() != tt.want {
			t.Errorf("%s - %s = %s, want %s", tt.a, tt.b, got.String(), tt.want)
		}
	}
}

func TestMul(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b, want string
	}{
		{"6", "7", "42"},
		{"-6", "7", "-42"},
		{"6", "-7", "-42"},
		{"-6", "-7", "42"},
		{"-5", "0", "0"},
	}
	for _, tt := range tests {
		a, _ := FromString(tt.a)
		b, _ := FromString(tt.b)
		got, err := a.Mul(b)
		if err != nil {
			t.Fatalf("Mul(%s, %s): unexpected error: %v", tt.a, tt.b, err)
		}
		if got.String() != tt.want {
			t.Errorf("%s * %s = %s, want %s", tt.a, tt.b, got.String(), tt.want)
		}
	}
}

// TestDivMod_CTruncation exercises spec.md §8 S7's signed-division example
// set: the quotient truncates toward zero and the remainder's sign follows
// the dividend.
func TestDivMod_CTruncation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b, wantQ, wantR string
	}{
		{"-7", "2", "-3", "-1"},
		{"7", "-2", "-3", "1"},
		{"-7", "-2", "3", "-1"},
		{"7", "2", "3", "1"},
	}
	for _, tt := range tests {
		a, _ := FromString(tt.a)
		b, _ := FromString(tt.b)
		q, r, err := a.DivMod(b)
		if err != nil {
			t.Fatalf("DivMod(%s, %s): unexpected error: %v", tt.a, tt.b, err)
		}
		if q.String() != tt.wantQ {
			t.Errorf("%s / %s = %s, want %s", tt.a, tt.b, q.String(), tt.wantQ)
		}
		if r.String() != tt.wantR {
			t.Errorf("%s mod %s = %s, want %s", tt.a, tt.b, r.String(), tt.wantR)
		}
	}
}

func TestDivMod_DivideByZero(t *testing.T) {
	t.Parallel()
	a, _ := FromString("-7")
	zero := Zero()
	if _, _, err := a.DivMod(zero); err == nil {
		t.Error("expected an error dividing by zero")
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b string
		want int
	}{
		{"-5", "3", -1},
		{"3", "-5", 1},
		{"-5", "-3", -1},
		{"-3", "-5", 1},
		{"0", "-0", 0},
		{"4", "4", 0},
	}
	for _, tt := range tests {
		a, _ := FromString(tt.a)
		b, _ := FromString(tt.b)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNeg(t *testing.T) {
	t.Parallel()
	x, _ := FromString("5")
	if got := x.Neg().String(); got != "-5" {
		t.Errorf("Neg(5) = %s, want -5", got)
	}
	zero := Zero()
	if got := zero.Neg().String(); got != "0" {
		t.Errorf("Neg(0) = %s, want 0 (no negative zero)", got)
	}
}

func TestFromInt64(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-42, "-42"},
		{-9223372036854775808, "-9223372036854775808"}, // math.MinInt64
	}
	for _, tt := range tests {
		if got := FromInt64(tt.in).String(); got != tt.want {
			t.Errorf("FromInt64(%d) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
