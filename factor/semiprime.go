package factor

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidModulus means a factorization does not have the shape a
// recoverable modulus requires: exactly two distinct prime factors, each
// with multiplicity one.
var ErrInvalidModulus = errors.New("invalid modulus: not a two-prime semiprime")

var one = big.NewInt(1)

// Semiprime checks that f is a clean two-prime factorization and returns the
// two factors in ascending order. The check is structural: factors are taken
// at their word and not primality-tested here, so a caller that needs the
// product to equal a particular modulus must multiply them back out.
func Semiprime(f Factorization) (p, q *big.Int, err error) {
	if len(f) != 2 {
		return nil, nil, fmt.Errorf("%w: have %d distinct factors, want 2", ErrInvalidModulus, len(f))
	}

	var vals []*big.Int
	for text, mult := range f {
		if mult != 1 {
			return nil, nil, fmt.Errorf("%w: factor %s has multiplicity %d", ErrInvalidModulus, text, mult)
		}
		v, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return nil, nil, fmt.Errorf("%w: factor %q is not a decimal integer", ErrInvalidModulus, text)
		}
		if v.Cmp(one) <= 0 {
			return nil, nil, fmt.Errorf("%w: factor %s is not greater than 1", ErrInvalidModulus, v)
		}
		vals = append(vals, v)
	}

	p, q = vals[0], vals[1]
	switch p.Cmp(q) {
	case 0:
		// Two map keys can parse to the same integer ("7" and "07").
		return nil, nil, fmt.Errorf("%w: factor %s appears twice", ErrInvalidModulus, p)
	case 1:
		p, q = q, p
	}
	return p, q, nil
}
