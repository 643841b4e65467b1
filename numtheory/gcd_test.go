package numtheory_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/clawmath/numtheory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtendedGCD_BezoutIdentity checks a*x + b*y == g and g ≥ 0 over a grid
// of signed inputs, including zeros.
func TestExtendedGCD_BezoutIdentity(t *testing.T) {
	values := []int64{0, 1, -1, 2, -2, 3, 6, -6, 46, 240, -240, 94, 22, 67, 26, 1 << 40, -(1 << 40) + 7}
	for _, a := range values {
		for _, b := range values {
			g, x, y := numtheory.ExtendedGCD(big.NewInt(a), big.NewInt(b))

			lhs := new(big.Int).Mul(big.NewInt(a), x)
			lhs.Add(lhs, new(big.Int).Mul(big.NewInt(b), y))
			assert.Equal(t, 0, lhs.Cmp(g), "a=%d b=%d: a*x+b*y=%s, g=%s", a, b, lhs, g)
			assert.GreaterOrEqual(t, g.Sign(), 0, "gcd must be non-negative for a=%d b=%d", a, b)

			want := new(big.Int).GCD(nil, nil, big.NewInt(a), big.NewInt(b))
			assert.Equal(t, 0, want.Cmp(g), "gcd(%d,%d)", a, b)
		}
	}
}

// TestExtendedGCD_ZeroFirst verifies the documented a == 0 results.
func TestExtendedGCD_ZeroFirst(t *testing.T) {
	g, x, y := numtheory.ExtendedGCD(big.NewInt(0), big.NewInt(5))
	assert.Equal(t, "5 0 1", g.String()+" "+x.String()+" "+y.String())

	g, x, y = numtheory.ExtendedGCD(big.NewInt(0), big.NewInt(-5))
	assert.Equal(t, "5 0 -1", g.String()+" "+x.String()+" "+y.String())

	g, x, y = numtheory.ExtendedGCD(big.NewInt(0), big.NewInt(0))
	assert.Equal(t, "0 1 0", g.String()+" "+x.String()+" "+y.String())
}

// TestExtendedGCD_DoesNotMutate ensures the inputs are left untouched.
func TestExtendedGCD_DoesNotMutate(t *testing.T) {
	a, b := big.NewInt(94), big.NewInt(22)
	_, _, _ = numtheory.ExtendedGCD(a, b)
	assert.Equal(t, int64(94), a.Int64())
	assert.Equal(t, int64(22), b.Int64())
}

// TestExtendedGCD64 covers the int64 wrapper and its overflow reporting.
func TestExtendedGCD64(t *testing.T) {
	g, x, y, err := numtheory.ExtendedGCD64(240, 46)
	require.NoError(t, err)
	assert.Equal(t, int64(2), g)
	assert.Equal(t, int64(2), 240*x+46*y)

	_, _, _, err = numtheory.ExtendedGCD64(math.MinInt64, 0)
	assert.ErrorIs(t, err, numtheory.ErrOverflow, "gcd(MinInt64, 0) = 2^63 does not fit")

	g, _, _, err = numtheory.ExtendedGCD64(math.MinInt64, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), g)
}
