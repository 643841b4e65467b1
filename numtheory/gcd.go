package numtheory

import (
	"fmt"
	"math/big"
)

// ExtendedGCD returns g, x, y such that a*x + b*y == g and g == gcd(|a|, |b|).
//
// Algorithm (iterative Euclid, Knuth TAOCP Vol. 1 Alg. E):
//  1. Keep the pairs (r0, r1), (s0, s1), (t0, t1) with a*s_i + b*t_i == r_i.
//  2. While r1 != 0: q = r0 quo r1, then shift each pair by (r1, r0 - q*r1).
//  3. Normalise the sign so that g ≥ 0.
//
// Edge cases:
//   - a == 0: returns (|b|, 0, sign(b)); for b ≥ 0 that is (b, 0, 1).
//   - a == b == 0: returns (0, 1, 0).
//
// The caller interprets the signs of x and y; no canonical range is imposed.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	var (
		r0, r1 = new(big.Int).Set(a), new(big.Int).Set(b)
		s0, s1 = big.NewInt(1), big.NewInt(0)
		t0, t1 = big.NewInt(0), big.NewInt(1)
		q, tmp = new(big.Int), new(big.Int)
	)
	for r1.Sign() != 0 {
		q.Quo(r0, r1)

		tmp.Mul(q, r1)
		r0, r1 = r1, tmp.Sub(r0, tmp)
		tmp = new(big.Int)

		tmp.Mul(q, s1)
		s0, s1 = s1, tmp.Sub(s0, tmp)
		tmp = new(big.Int)

		tmp.Mul(q, t1)
		t0, t1 = t1, tmp.Sub(t0, tmp)
		tmp = new(big.Int)
	}
	if r0.Sign() < 0 {
		r0.Neg(r0)
		s0.Neg(s0)
		t0.Neg(t0)
	}

	return r0, s0, t0
}

// ExtendedGCD64 is ExtendedGCD on int64 inputs.
// It returns ErrOverflow when a result does not fit in int64, which can only
// happen when an input is math.MinInt64.
func ExtendedGCD64(a, b int64) (g, x, y int64, err error) {
	bg, bx, by := ExtendedGCD(big.NewInt(a), big.NewInt(b))
	if !bg.IsInt64() || !bx.IsInt64() || !by.IsInt64() {
		return 0, 0, 0, fmt.Errorf("ExtendedGCD64(%d, %d): %w", a, b, ErrOverflow)
	}

	return bg.Int64(), bx.Int64(), by.Int64(), nil
}
