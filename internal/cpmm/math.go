// Package cpmm implements the constant-product pricing arithmetic shared by
// the pool engine and the quote surface. All math is exact big.Int integer
// arithmetic with floor division; there is no floating point anywhere.
package cpmm

import (
	"math/big"
	"sync"
)

var (
	// Fee constants: 0.3% = 997/1000.
	feeMul = big.NewInt(997)
	feeDen = big.NewInt(1000)

	// Scale is the fixed-point factor used by Price (10^18).
	Scale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	defaultMath = newMathService()
)

type mathTmp struct {
	a *big.Int
	b *big.Int
	c *big.Int
}

type mathService struct {
	pool *sync.Pool
}

func newMathService() *mathService {
	return &mathService{
		pool: &sync.Pool{
			New: func() any {
				return &mathTmp{
					a: new(big.Int),
					b: new(big.Int),
					c: new(big.Int),
				}
			},
		},
	}
}

func (m *mathService) getAmountOutInto(out, amountIn, reserveIn, reserveOut *big.Int) bool {
	if out == nil {
		return false
	}
	// basic validation.
	if amountIn.Sign() <= 0 || reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		out.SetInt64(0)
		return false
	}

	t := m.pool.Get().(*mathTmp)

	// ainFee := amountIn * 997.
	t.a.Mul(amountIn, feeMul)

	// num := ainFee * reserveOut.
	t.b.Mul(t.a, reserveOut)

	// den := reserveIn * 1000 + ainFee.
	t.c.Mul(reserveIn, feeDen)
	t.c.Add(t.c, t.a)

	// out = num / den, floored. den > 0 since reserveIn > 0.
	out.Quo(t.b, t.c)

	m.pool.Put(t)
	return true
}

// GetAmountOutInto computes the swap output for a given input using the
// constant-product formula with the 0.3% fee (997/1000), rounding down.
//
// It writes the result into out and reports ok; ok is false when any of the
// inputs is non-positive. out must be non-nil; this function does not
// allocate for temporaries if the pool is warm.
func GetAmountOutInto(out, amountIn, reserveIn, reserveOut *big.Int) bool {
	return defaultMath.getAmountOutInto(out, amountIn, reserveIn, reserveOut)
}

// GetAmountOut computes the swap output for a given input using the
// constant-product formula with the 0.3% fee (997/1000), rounding down.
//
// Returns (output, true) on success, or (0, false) if any input is
// non-positive. Allocates the result; uses the pool for temporaries.
func GetAmountOut(amountIn, reserveIn, reserveOut *big.Int) (*big.Int, bool) {
	out := new(big.Int)
	ok := defaultMath.getAmountOutInto(out, amountIn, reserveIn, reserveOut)
	return out, ok
}

// Isqrt returns the integer square root of n, rounded down, using the
// Babylonian iteration (terminates when the candidate stops decreasing).
// Negative inputs yield 0.
func Isqrt(n *big.Int) *big.Int {
	if n.Sign() <= 0 {
		return new(big.Int)
	}
	if n.Cmp(big.NewInt(3)) <= 0 {
		return big.NewInt(1)
	}

	two := big.NewInt(2)
	z := new(big.Int).Set(n)
	x := new(big.Int).Quo(n, two)
	x.Add(x, big.NewInt(1))
	for x.Cmp(z) < 0 {
		z.Set(x)
		// x = (n/x + x) / 2
		x.Quo(n, x).Add(x, z).Quo(x, two)
	}
	return z
}

// Price returns reserveB scaled by Scale and divided by reserveA: the price
// of asset A denominated in asset B as an 18-decimal fixed-point value.
// Returns (0, false) when reserveA is non-positive.
func Price(reserveA, reserveB *big.Int) (*big.Int, bool) {
	if reserveA.Sign() <= 0 {
		return new(big.Int), false
	}
	p := new(big.Int).Mul(reserveB, Scale)
	return p.Quo(p, reserveA), true
}
