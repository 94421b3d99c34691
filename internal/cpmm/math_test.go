package cpmm

import (
	"math/big"
	"testing"
)

func bi(s string) *big.Int {
	z, _ := new(big.Int).SetString(s, 10)
	return z
}

func TestGetAmountOutInto_Basic(t *testing.T) {
	t.Parallel()

	out := new(big.Int)
	ok := GetAmountOutInto(out, bi("100"), bi("1000"), bi("1000"))
	if !ok {
		t.Fatalf("ok=false")
	}
	if out.Cmp(bi("90")) != 0 { // 90.6... -> 90
		t.Fatalf("want 90 got %s", out.String())
	}
}

func TestGetAmountOutInto_FeeWorkthrough(t *testing.T) {
	t.Parallel()

	// amountInWithFee = 10*997 = 9970
	// numerator       = 9970*200 = 1994000
	// denominator     = 100*1000 + 9970 = 109970
	// out             = floor(1994000/109970) = 18
	out := new(big.Int)
	if !GetAmountOutInto(out, bi("10"), bi("100"), bi("200")) {
		t.Fatalf("ok=false")
	}
	if out.Cmp(bi("18")) != 0 {
		t.Fatalf("want 18 got %s", out.String())
	}
}

func TestGetAmountOutInto_Zeroes(t *testing.T) {
	t.Parallel()

	out := new(big.Int)
	if ok := GetAmountOutInto(out, bi("0"), bi("1"), bi("1")); ok {
		t.Fatal("zero amountIn should be false")
	}
	if ok := GetAmountOutInto(out, bi("1"), bi("0"), bi("1")); ok {
		t.Fatal("zero reserveIn should be false")
	}
	if ok := GetAmountOutInto(out, bi("1"), bi("1"), bi("0")); ok {
		t.Fatal("zero reserveOut should be false")
	}
}

func TestGetAmountOut_StrictlyBelowReserveOut(t *testing.T) {
	t.Parallel()

	// Even an enormous input cannot drain the output reserve.
	out, ok := GetAmountOut(bi("1000000000000000000000000"), bi("10"), bi("10"))
	if !ok {
		t.Fatalf("ok=false")
	}
	if out.Cmp(bi("10")) >= 0 {
		t.Fatalf("output %s must stay below reserveOut 10", out.String())
	}
}

func TestGetAmountOut_Idempotent(t *testing.T) {
	t.Parallel()

	a, okA := GetAmountOut(bi("12345"), bi("99999"), bi("88888"))
	b, okB := GetAmountOut(bi("12345"), bi("99999"), bi("88888"))
	if !okA || !okB {
		t.Fatalf("ok=false")
	}
	if a.Cmp(b) != 0 {
		t.Fatalf("quote not idempotent: %s vs %s", a.String(), b.String())
	}
}

func TestIsqrt(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"2", "1"},
		{"3", "1"},
		{"4", "2"},
		{"15", "3"},
		{"16", "4"},
		{"400", "20"},
		{"1000000000000000000", "1000000000"},
		{"999999999999999999", "999999999"},
	}
	for _, tc := range cases {
		got := Isqrt(bi(tc.in))
		if got.Cmp(bi(tc.want)) != 0 {
			t.Fatalf("Isqrt(%s): want %s got %s", tc.in, tc.want, got.String())
		}
	}
}

func TestIsqrt_Floor(t *testing.T) {
	t.Parallel()

	// For every n, Isqrt(n)^2 <= n < (Isqrt(n)+1)^2.
	for n := int64(0); n < 5000; n++ {
		v := big.NewInt(n)
		r := Isqrt(v)
		lo := new(big.Int).Mul(r, r)
		hi := new(big.Int).Add(r, big.NewInt(1))
		hi.Mul(hi, hi)
		if lo.Cmp(v) > 0 || hi.Cmp(v) <= 0 {
			t.Fatalf("Isqrt(%d)=%s out of range", n, r.String())
		}
	}
}

func TestPrice(t *testing.T) {
	t.Parallel()

	p, ok := Price(bi("10"), bi("40"))
	if !ok {
		t.Fatalf("ok=false")
	}
	if p.Cmp(bi("4000000000000000000")) != 0 { // 4 * 10^18
		t.Fatalf("want 4e18 got %s", p.String())
	}

	if _, ok := Price(bi("0"), bi("40")); ok {
		t.Fatal("zero reserveA should be false")
	}
}

func BenchmarkGetAmountOut_Allocating(b *testing.B) {
	ain := bi("1000000000000000000")
	rIn := bi("1234567890000000000000")
	rOut := bi("987654321000000000000000")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := GetAmountOut(ain, rIn, rOut); !ok {
			b.Fatal("unexpected false")
		}
	}
}

func BenchmarkGetAmountOut_NoAllocs(b *testing.B) {
	ain := bi("1000000000000000000")
	rIn := bi("1234567890000000000000")
	rOut := bi("987654321000000000000000")
	out := new(big.Int) // allocate once and reuse
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if !GetAmountOutInto(out, ain, rIn, rOut) {
			b.Fatal("unexpected false")
		}
	}
}

func BenchmarkIsqrt(b *testing.B) {
	n := bi("123456789123456789123456789")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Isqrt(n)
	}
}
