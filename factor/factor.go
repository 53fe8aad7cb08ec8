// Package factor defines the factorization collaborator the recovery
// pipeline depends on, together with a local implementation and an rpc
// client/server pair for running the work on another peer.
package factor

import "math/big"

// Factorization maps the decimal text of each prime factor to its
// multiplicity. Factors travel as strings because a big.Int cannot be sent
// over rpc; parse keys back with big.Int.SetString.
type Factorization map[string]int

// add bumps the multiplicity of p.
func (f Factorization) add(p *big.Int) {
	f[p.Text(10)]++
}

// Factorizer produces the prime factorization of an integer greater than 1.
// Factoring is an external concern to the rest of the pipeline: an
// implementation may be local arithmetic, a remote service, or a fixed
// answer known ahead of time.
type Factorizer interface {
	Factorize(n *big.Int) (Factorization, error)
}

// Fixed returns a Factorizer that reports the given factors for every
// input. It is the collaborator to use when the factorization is already
// known and the real work should be bypassed.
func Fixed(factors ...*big.Int) Factorizer {
	f := make(Factorization, len(factors))
	for _, p := range factors {
		f.add(p)
	}
	return fixedFactorizer{f: f}
}

type fixedFactorizer struct {
	f Factorization
}

func (ff fixedFactorizer) Factorize(n *big.Int) (Factorization, error) {
	out := make(Factorization, len(ff.f))
	for p, m := range ff.f {
		out[p] = m
	}
	return out, nil
}
