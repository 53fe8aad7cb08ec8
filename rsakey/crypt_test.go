package rsakey

import (
	"errors"
	"math/big"
	"testing"
)

// textbookKey returns the p=53, q=61 key used across these tests.
func textbookKey(t *testing.T) *PrivateKey {
	t.Helper()
	return &PrivateKey{
		PublicKey: PublicKey{N: big.NewInt(3233), E: big.NewInt(17)},
		D:         big.NewInt(2753),
		P:         big.NewInt(53),
		Q:         big.NewInt(61),
	}
}

func TestEncryptAllKnownBlocks(t *testing.T) {
	key := textbookKey(t)
	cs, err := EncryptAll(&key.PublicKey, []*big.Int{
		big.NewInt(65), big.NewInt(181), big.NewInt(9), big.NewInt(123),
	})
	if err != nil {
		t.Fatalf("EncryptAll: %v", err)
	}
	want := []int64{2790, 2823, 1972, 855}
	for i, c := range cs {
		if c.Int64() != want[i] {
			t.Errorf("c[%d] = %v, want %d", i, c, want[i])
		}
	}
}

func TestDecryptAllKnownBlocks(t *testing.T) {
	key := textbookKey(t)
	ms, err := DecryptAll(key, []*big.Int{
		big.NewInt(2790), big.NewInt(2823), big.NewInt(1972), big.NewInt(855),
	})
	if err != nil {
		t.Fatalf("DecryptAll: %v", err)
	}
	want := []int64{65, 181, 9, 123}
	for i, m := range ms {
		if m.Int64() != want[i] {
			t.Errorf("m[%d] = %v, want %d", i, m, want[i])
		}
	}
}

// Distinct blocks must come back in their original positions no matter how
// the work is spread over workers.
func TestDecryptAllPreservesOrder(t *testing.T) {
	key := textbookKey(t)
	var ms []*big.Int
	for i := 0; i < 200; i++ {
		ms = append(ms, big.NewInt(int64(i)))
	}
	cs, err := EncryptAll(&key.PublicKey, ms)
	if err != nil {
		t.Fatalf("EncryptAll: %v", err)
	}
	back, err := DecryptAll(key, cs)
	if err != nil {
		t.Fatalf("DecryptAll: %v", err)
	}
	for i, m := range back {
		if m.Int64() != int64(i) {
			t.Fatalf("m[%d] = %v after round trip, want %d", i, m, i)
		}
	}
}

func TestDecryptAllRangeCheck(t *testing.T) {
	key := textbookKey(t)
	cases := []struct {
		name   string
		blocks []*big.Int
		index  int
	}{
		{"negative", []*big.Int{big.NewInt(-1)}, 0},
		{"equal to n", []*big.Int{big.NewInt(3233)}, 0},
		{"above n", []*big.Int{big.NewInt(10), big.NewInt(4000)}, 1},
		{"nil block", []*big.Int{big.NewInt(10), nil, big.NewInt(11)}, 1},
	}
	for _, c := range cases {
		out, err := DecryptAll(key, c.blocks)
		if out != nil {
			t.Errorf("%s: partial output %v", c.name, out)
		}
		var rangeErr *CiphertextRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("%s: err = %v, want CiphertextRangeError", c.name, err)
			continue
		}
		if rangeErr.Index != c.index {
			t.Errorf("%s: index = %d, want %d", c.name, rangeErr.Index, c.index)
		}
	}
}

func TestEncryptAllRangeCheck(t *testing.T) {
	key := textbookKey(t)
	_, err := EncryptAll(&key.PublicKey, []*big.Int{big.NewInt(0), big.NewInt(9999)})
	var rangeErr *CiphertextRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("err = %v, want CiphertextRangeError", err)
	}
	if rangeErr.Index != 1 {
		t.Fatalf("index = %d, want 1", rangeErr.Index)
	}
}

func TestDecryptAllEmptyBatch(t *testing.T) {
	ms, err := DecryptAll(textbookKey(t), nil)
	if err != nil {
		t.Fatalf("DecryptAll: %v", err)
	}
	if len(ms) != 0 {
		t.Fatalf("ms = %v, want empty", ms)
	}
}

func TestRoundTripLargeKey(t *testing.T) {
	e := mustInt(t, "12398737")
	n := mustInt(t, "956331992007843552652604425031376690367")
	d := mustInt(t, "801756262003467870842260800571951669873")
	key := &PrivateKey{
		PublicKey: PublicKey{N: n, E: e},
		D:         d,
		P:         mustInt(t, "7746289204980135457"),
		Q:         mustInt(t, "123456789012345681631"),
	}

	ms := []*big.Int{
		mustInt(t, "30181929001929002335002215303015280030"),
		mustInt(t, "25003018150033252822140030181130002415"),
		big.NewInt(0),
		new(big.Int).Sub(n, big.NewInt(1)),
	}
	cs, err := EncryptAll(&key.PublicKey, ms)
	if err != nil {
		t.Fatalf("EncryptAll: %v", err)
	}
	back, err := DecryptAll(key, cs)
	if err != nil {
		t.Fatalf("DecryptAll: %v", err)
	}
	for i := range ms {
		if back[i].Cmp(ms[i]) != 0 {
			t.Errorf("block %d: got %v, want %v", i, back[i], ms[i])
		}
	}
}
