package numtheory

import (
	"fmt"
	"math/big"
)

// FloorDiv returns ⌊a/b⌋. Go's Quo truncates toward zero, so the quotient is
// stepped down by one whenever the remainder is non-zero and has the opposite
// sign of b.
func FloorDiv(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, fmt.Errorf("FloorDiv(%s, 0): %w", a, ErrDivisionByZero)
	}
	q, m := new(big.Int).QuoRem(a, b, new(big.Int))
	if m.Sign() != 0 && m.Sign() != b.Sign() {
		q.Sub(q, big.NewInt(1))
	}

	return q, nil
}

// CeilDiv returns ⌈a/b⌉.
func CeilDiv(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, fmt.Errorf("CeilDiv(%s, 0): %w", a, ErrDivisionByZero)
	}
	q, m := new(big.Int).QuoRem(a, b, new(big.Int))
	if m.Sign() != 0 && m.Sign() == b.Sign() {
		q.Add(q, big.NewInt(1))
	}

	return q, nil
}

// Divides reports whether d divides n exactly. Zero divides only zero.
func Divides(d, n *big.Int) bool {
	if d.Sign() == 0 {
		return n.Sign() == 0
	}

	return new(big.Int).Rem(n, d).Sign() == 0
}
