package factor

import (
	"errors"
	"fmt"
	"math/big"
)

// DefaultBudget is the rho iteration budget applied when Local.Budget is
// zero. It is generous for factors up to roughly twelve digits; moduli built
// from cryptographically sized primes will exhaust it, which is the point:
// those inputs belong on real factoring infrastructure, not in this process.
const DefaultBudget = 1 << 22

// ErrBudgetExceeded means the factorization gave up because the input is too
// hard for the configured iteration budget.
var ErrBudgetExceeded = errors.New("factorization iteration budget exceeded")

// smallPrimes is the trial division table, all primes below 1<<12.
var smallPrimes = sieve(1 << 12)

func sieve(limit int64) []int64 {
	composite := make([]bool, limit)
	var primes []int64
	for i := int64(2); i < limit; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j < limit; j += i {
			composite[j] = true
		}
	}
	return primes
}

// Local factors integers in-process: trial division over a fixed prime
// table, then Pollard's rho on whatever composite remains, classifying
// cofactors with ProbablyPrime(40). Rho work is charged against an iteration
// budget so intractable inputs fail with ErrBudgetExceeded instead of
// spinning forever.
type Local struct {
	// Budget bounds the total rho iterations of a single Factorize call.
	// Zero means DefaultBudget.
	Budget int
}

func NewLocal() *Local {
	return &Local{Budget: DefaultBudget}
}

func (l *Local) Factorize(n *big.Int) (Factorization, error) {
	if n == nil || n.Cmp(one) <= 0 {
		return nil, fmt.Errorf("cannot factor %v: need an integer greater than 1", n)
	}

	f := make(Factorization)
	rem := new(big.Int).Set(n)

	p := new(big.Int)
	mod := new(big.Int)
	quo := new(big.Int)
	for _, sp := range smallPrimes {
		p.SetInt64(sp)
		for {
			quo.QuoRem(rem, p, mod)
			if mod.Sign() != 0 {
				break
			}
			rem.Set(quo)
			f.add(p)
		}
		if rem.Cmp(one) == 0 {
			return f, nil
		}
	}

	// Whatever survived trial division has only large prime factors. Split
	// it recursively until every piece tests prime.
	budget := l.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}
	var split func(m *big.Int) error
	split = func(m *big.Int) error {
		if m.ProbablyPrime(40) {
			f.add(m)
			return nil
		}
		d, err := rho(m, &budget)
		if err != nil {
			return fmt.Errorf("splitting %s: %w", m, err)
		}
		if err := split(d); err != nil {
			return err
		}
		return split(new(big.Int).Div(m, d))
	}
	if err := split(rem); err != nil {
		return nil, err
	}
	return f, nil
}

// rho finds a nontrivial factor of the composite m using Pollard's rho with
// Floyd cycle detection. The polynomial x^2+c starts at c=1 and moves to the
// next constant whenever a cycle closes without producing a factor, so runs
// are deterministic and repeatable. Every iteration decrements *budget.
func rho(m *big.Int, budget *int) (*big.Int, error) {
	c := big.NewInt(0)
	diff := new(big.Int)
	for {
		c.Add(c, one)
		x := big.NewInt(2)
		y := big.NewInt(2)
		for {
			if *budget <= 0 {
				return nil, ErrBudgetExceeded
			}
			*budget--

			polyStep(x, c, m)
			polyStep(polyStep(y, c, m), c, m)

			diff.Sub(x, y)
			diff.Abs(diff)
			if diff.Sign() == 0 {
				// The tortoise met the hare: cycle closed without a
				// factor. Restart with the next constant.
				break
			}
			// 0 < diff < m, so the gcd here is always a proper divisor
			// of m or 1.
			d := new(big.Int).GCD(nil, nil, diff, m)
			if d.Cmp(one) != 0 {
				return d, nil
			}
		}
	}
}

// polyStep advances v to (v^2 + c) mod m in place.
func polyStep(v, c, m *big.Int) *big.Int {
	v.Mul(v, v)
	v.Add(v, c)
	return v.Mod(v, m)
}
