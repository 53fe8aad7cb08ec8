package lettercode

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrUnencodable means a message cannot be rendered as blocks that Decode
// would reassemble into the same digits.
var ErrUnencodable = errors.New("unencodable message")

// Encode maps msg onto the digit code, two digits per character. Lowercase
// letters are folded to uppercase first. Characters outside the 27-letter
// alphabet are an error: unlike decoding, encoding has no sentinel to hide
// behind.
func Encode(msg string) (string, error) {
	var sb strings.Builder
	sb.Grow(2 * len(msg))
	for i, ch := range strings.ToUpper(msg) {
		code, ok := charToCode[ch]
		if !ok {
			return "", fmt.Errorf("%w: character %q at offset %d is outside the code alphabet", ErrUnencodable, ch, i)
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}

// SplitBlocks cuts a digit string into integers that each fit below n.
// Blocks are cut greedily from the left at one digit fewer than n's decimal
// width, and a cut shrinks while the digits after it begin with '0': a
// block whose natural rendering drops a leading zero cannot survive Decode.
// Digit strings that cannot be cut this way, because they start with '0' or
// contain a zero run longer than a block, are ErrUnencodable.
func SplitBlocks(digits string, n *big.Int) ([]*big.Int, error) {
	if digits == "" {
		return nil, nil
	}
	w := len(n.Text(10)) - 1
	if w < 1 {
		return nil, fmt.Errorf("%w: modulus %s is too small to carry a block", ErrUnencodable, n)
	}
	if digits[0] == '0' {
		return nil, fmt.Errorf("%w: digit string starts with a zero", ErrUnencodable)
	}

	var blocks []*big.Int
	for i := 0; i < len(digits); {
		l := w
		if i+l > len(digits) {
			l = len(digits) - i
		}
		for i+l < len(digits) && digits[i+l] == '0' {
			l--
			if l == 0 {
				return nil, fmt.Errorf("%w: zero run longer than a block at digit %d", ErrUnencodable, i)
			}
		}
		b, ok := new(big.Int).SetString(digits[i:i+l], 10)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a digit string", ErrUnencodable, digits[i:i+l])
		}
		blocks = append(blocks, b)
		i += l
	}
	return blocks, nil
}
