// Package numtheory provides the exact integer primitives behind the
// two-generator solver: the extended Euclidean algorithm and floor/ceil
// division that is correct for every sign combination.
//
// What is here?
//
//	ExtendedGCD(a, b)   — gcd and Bézout coefficients, a*x + b*y == gcd, gcd ≥ 0
//	ExtendedGCD64(a, b) — the same contract on int64, with overflow reported
//	FloorDiv / CeilDiv  — ⌊a/b⌋ and ⌈a/b⌉ for any signs of a and b
//	Divides(d, n)       — exact divisibility test (0 divides only 0)
//
// All functions operate on math/big integers so intermediate products never
// wrap. Inputs are never mutated; every result is a freshly allocated value.
//
// Complexity:
//
//   - ExtendedGCD: O(log min(|a|,|b|)) iterations, no recursion.
//   - FloorDiv, CeilDiv, Divides: one QuoRem each.
//
// Errors (sentinel):
//
//   - ErrDivisionByZero if a divisor is zero.
//   - ErrOverflow       if an int64 result cannot be represented.
package numtheory
