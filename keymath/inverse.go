package keymath

import (
	"errors"
	"math/big"
)

// ErrNoInverse means the two integers are not coprime, so no multiplicative
// inverse exists.
var ErrNoInverse = errors.New("no modular inverse: operands are not coprime")

var one = big.NewInt(1)

// ModInverse returns the x in [0, n) with (a*x) mod n = 1, for n > 1.
// If gcd(a, n) != 1 it returns ErrNoInverse.
func ModInverse(a, n *big.Int) (*big.Int, error) {
	if n.Cmp(one) <= 0 {
		return nil, ErrDegenerateInput
	}
	g, u, _, err := ExtGCD(a, n)
	if err != nil {
		return nil, err
	}
	if g.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}
	// The raw Bezout coefficient may be negative. Mod is Euclidean, so a
	// single reduction lands in [0, n) regardless of u's sign.
	return new(big.Int).Mod(u, n), nil
}
