// Package decipher wires the whole recovery pipeline together: factor the
// modulus, derive the private exponent, decrypt the ciphertext blocks and
// decode the digit pairs back into text.
package decipher

import (
	"fmt"
	"math/big"

	"github.com/arvid220u/letterworld/factor"
	"github.com/arvid220u/letterworld/lettercode"
	"github.com/arvid220u/letterworld/rsakey"
	"github.com/google/uuid"
)

// Pipeline recovers plaintext from a public key, a factorizer and a batch
// of ciphertext blocks. Every stage is a pure function of the previous
// one, so a Pipeline is safe for concurrent use and identical inputs
// always produce identical results.
type Pipeline struct {
	// Id identifies this pipeline in logs. Immutable.
	Id uuid.UUID

	f factor.Factorizer
}

// New returns a Pipeline that uses f to factor moduli.
func New(f factor.Factorizer) *Pipeline {
	return &Pipeline{Id: uuid.New(), f: f}
}

// Result is everything one run produces. Key and Decrypted are the
// intermediate stages, kept so callers can inspect a run that decoded into
// garbage.
type Result struct {
	// Run identifies the run that produced this result.
	Run       uuid.UUID
	Plaintext string
	Key       *rsakey.PrivateKey
	Decrypted []*big.Int
}

// Run factors n, derives the private key for (e, n) and hands off to
// RunWithKey. An error from any stage aborts the run with no partial
// result; the failures here are deterministic arithmetic preconditions and
// retrying cannot fix them.
func (pl *Pipeline) Run(e, n *big.Int, ciphertext []*big.Int) (*Result, error) {
	pl.logf("factoring %d-bit modulus", n.BitLen())
	f, err := pl.f.Factorize(n)
	if err != nil {
		return nil, fmt.Errorf("factorize: %w", err)
	}
	pl.logf("modulus factored%s", sdump(f))

	key, err := rsakey.Derive(e, n, f)
	if err != nil {
		return nil, fmt.Errorf("derive: %w", err)
	}
	return pl.RunWithKey(key, ciphertext)
}

// RunWithKey is Run for callers that already hold the private key.
func (pl *Pipeline) RunWithKey(key *rsakey.PrivateKey, ciphertext []*big.Int) (*Result, error) {
	ms, err := rsakey.DecryptAll(key, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	assertf(len(ms) == len(ciphertext), "decrypted %d blocks from %d ciphertexts", len(ms), len(ciphertext))

	res := &Result{
		Run:       uuid.New(),
		Plaintext: lettercode.Decode(ms),
		Key:       key,
		Decrypted: ms,
	}
	pl.logf("run %s decoded %d blocks into %d characters%s", res.Run, len(ms), len(res.Plaintext), sdump(res))
	return res, nil
}

func (pl *Pipeline) logf(format string, a ...interface{}) {
	DPrintf(fmt.Sprintf("[pipeline %s] ", pl.Id)+format, a...)
}
