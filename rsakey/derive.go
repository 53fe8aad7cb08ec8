package rsakey

import (
	"fmt"
	"math/big"

	"github.com/arvid220u/letterworld/factor"
	"github.com/arvid220u/letterworld/keymath"
)

var one = big.NewInt(1)

// Derive recovers the private key for the public key (e, n) from the
// factorization f of n. The factorization must be a two-prime semiprime
// whose product is exactly n (factor.ErrInvalidModulus otherwise), and e
// must be coprime to phi(n) = (p-1)(q-1) (keymath.ErrNoInverse otherwise).
// Either failure means the supplied key material is unusable, so there is
// nothing to retry.
func Derive(e, n *big.Int, f factor.Factorization) (*PrivateKey, error) {
	p, q, err := factor.Semiprime(f)
	if err != nil {
		return nil, err
	}
	if new(big.Int).Mul(p, q).Cmp(n) != 0 {
		return nil, fmt.Errorf("%w: factor product does not equal the modulus", factor.ErrInvalidModulus)
	}

	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
	d, err := keymath.ModInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("inverting e mod phi(n): %w", err)
	}

	return &PrivateKey{
		PublicKey: PublicKey{N: new(big.Int).Set(n), E: new(big.Int).Set(e)},
		D:         d,
		P:         p,
		Q:         q,
	}, nil
}
