// Package keymath implements the integer arithmetic that key recovery is
// built on: the extended Euclidean algorithm and modular inversion.
package keymath

import (
	"errors"
	"math/big"
)

// ErrDegenerateInput means an operand was zero. The algorithms here are only
// defined for nonzero operands; hitting this is a usage error in the caller,
// not a property of the key material.
var ErrDegenerateInput = errors.New("degenerate input: operand is zero")

// ExtGCD computes g = gcd(a, b) along with Bezout coefficients u and v such
// that a*u + b*v = g. Neither operand may be zero. The returned g is always
// positive, and the inputs are not mutated.
//
// Each step divides the current remainder pair and shifts the coefficient
// pairs along with it. Division is Euclidean (big.Int.DivMod), so remainders
// stay non-negative and strictly shrink even when an operand is negative.
func ExtGCD(a, b *big.Int) (g, u, v *big.Int, err error) {
	if a.Sign() == 0 || b.Sign() == 0 {
		return nil, nil, nil, ErrDegenerateInput
	}

	r0, r1 := new(big.Int).Set(a), new(big.Int).Set(b)
	s0, s1 := big.NewInt(1), big.NewInt(0)
	t0, t1 := big.NewInt(0), big.NewInt(1)

	for r1.Sign() != 0 {
		q, r := new(big.Int).DivMod(r0, r1, new(big.Int))
		r0, r1 = r1, r
		s0, s1 = s1, new(big.Int).Sub(s0, new(big.Int).Mul(q, s1))
		t0, t1 = t1, new(big.Int).Sub(t0, new(big.Int).Mul(q, t1))
	}

	// r0 can only end up negative when a negative operand divides the other
	// exactly; flipping all three keeps the identity a*u + b*v = g intact.
	if r0.Sign() < 0 {
		r0.Neg(r0)
		s0.Neg(s0)
		t0.Neg(t0)
	}
	return r0, s0, t0, nil
}
