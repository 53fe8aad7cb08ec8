package rsakey

import (
	"fmt"
	"math/big"
	"runtime"
	"sync"
)

// CiphertextRangeError reports a block outside [0, n). Index is the position
// of the offending block in the batch.
type CiphertextRangeError struct {
	Index int
}

func (e *CiphertextRangeError) Error() string {
	return fmt.Sprintf("block %d out of range: need 0 <= value < modulus", e.Index)
}

// DecryptAll computes m[i] = c[i]^d mod n for every block in the batch. The
// whole batch is range-checked up front, so an out-of-range block fails the
// call before any exponentiation and there is never partial output. The
// result preserves the input order.
func DecryptAll(priv *PrivateKey, ciphertext []*big.Int) ([]*big.Int, error) {
	return expAll(priv.D, priv.N, ciphertext)
}

// EncryptAll computes c[i] = m[i]^e mod n for every block, under the same
// range and ordering contract as DecryptAll.
func EncryptAll(pub *PublicKey, plaintext []*big.Int) ([]*big.Int, error) {
	return expAll(pub.E, pub.N, plaintext)
}

// expAll raises each block to exp mod n. big.Int.Exp reduces after every
// squaring, so intermediates never outgrow twice the modulus width. Blocks
// are independent and fan out over a bounded set of goroutines; out[i] is
// written by exactly one worker.
func expAll(exp, n *big.Int, blocks []*big.Int) ([]*big.Int, error) {
	for i, b := range blocks {
		if b == nil || b.Sign() < 0 || b.Cmp(n) >= 0 {
			return nil, &CiphertextRangeError{Index: i}
		}
	}

	out := make([]*big.Int, len(blocks))
	workers := runtime.NumCPU()
	if workers > len(blocks) {
		workers = len(blocks)
	}
	if workers <= 1 {
		for i, b := range blocks {
			out[i] = new(big.Int).Exp(b, exp, n)
		}
		return out, nil
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				out[i] = new(big.Int).Exp(blocks[i], exp, n)
			}
		}()
	}
	for i := range blocks {
		idx <- i
	}
	close(idx)
	wg.Wait()
	return out, nil
}
