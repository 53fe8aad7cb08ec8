package keymath

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"
)

func mustInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad integer literal %q", s)
	}
	return v
}

func TestModInverseKnownVectors(t *testing.T) {
	cases := []struct {
		a, n, want string
	}{
		{"3", "11", "4"},
		{"10", "17", "12"},
		{"17", "3120", "2753"},
		{"5", "12", "5"},
		{"7", "2", "1"},
		{
			"12398737",
			"956331992007843552521401346814050873280",
			"801756262003467870842260800571951669873",
		},
	}
	for _, c := range cases {
		x, err := ModInverse(mustInt(t, c.a), mustInt(t, c.n))
		if err != nil {
			t.Fatalf("ModInverse(%s, %s): %v", c.a, c.n, err)
		}
		if x.Cmp(mustInt(t, c.want)) != 0 {
			t.Errorf("ModInverse(%s, %s) = %v, want %s", c.a, c.n, x, c.want)
		}
	}
}

// A negative Bezout coefficient must be folded into [0, n); (10, 17) above
// covers one such case, this covers many.
func TestModInverseRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	limit := new(big.Int).Lsh(big.NewInt(1), 128)
	two := big.NewInt(2)
	for i := 0; i < 500; i++ {
		n := new(big.Int).Add(new(big.Int).Rand(rng, limit), two)
		a := new(big.Int).Add(new(big.Int).Rand(rng, n), big.NewInt(1))
		if a.Cmp(n) >= 0 {
			a.Sub(a, n)
			if a.Sign() == 0 {
				continue
			}
		}

		g := new(big.Int).GCD(nil, nil, a, n)
		x, err := ModInverse(a, n)
		if g.Cmp(big.NewInt(1)) != 0 {
			if !errors.Is(err, ErrNoInverse) {
				t.Fatalf("ModInverse(%v, %v): err = %v, want ErrNoInverse", a, n, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ModInverse(%v, %v): %v", a, n, err)
		}
		if x.Sign() < 0 || x.Cmp(n) >= 0 {
			t.Fatalf("ModInverse(%v, %v) = %v, outside [0, n)", a, n, x)
		}
		prod := new(big.Int).Mul(a, x)
		if prod.Mod(prod, n).Cmp(big.NewInt(1)) != 0 {
			t.Fatalf("ModInverse(%v, %v) = %v, (a*x) mod n != 1", a, n, x)
		}
	}
}

func TestModInverseNotCoprime(t *testing.T) {
	cases := []struct {
		a, n int64
	}{
		{6, 9},
		{4, 8},
		{1000, 250},
		{2, 1234567890},
	}
	for _, c := range cases {
		_, err := ModInverse(big.NewInt(c.a), big.NewInt(c.n))
		if !errors.Is(err, ErrNoInverse) {
			t.Errorf("ModInverse(%d, %d): err = %v, want ErrNoInverse", c.a, c.n, err)
		}
	}
}

func TestModInverseDegenerate(t *testing.T) {
	cases := []struct {
		a, n int64
	}{
		{3, 1},
		{3, 0},
		{3, -5},
		{0, 7},
	}
	for _, c := range cases {
		_, err := ModInverse(big.NewInt(c.a), big.NewInt(c.n))
		if !errors.Is(err, ErrDegenerateInput) {
			t.Errorf("ModInverse(%d, %d): err = %v, want ErrDegenerateInput", c.a, c.n, err)
		}
	}
}
