// Package rsakey derives RSA private keys from factored moduli and runs
// batch encryption and decryption with them.
package rsakey

import "math/big"

// PublicKey is an RSA public key: modulus n and public exponent e.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is a recovered private key. P and Q keep the two primes the
// derivation consumed, in ascending order; phi(n) itself is not retained.
type PrivateKey struct {
	PublicKey
	D *big.Int
	P *big.Int
	Q *big.Int
}
