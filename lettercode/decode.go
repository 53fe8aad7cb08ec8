package lettercode

import (
	"math/big"
	"strings"
)

// decodeState tracks progress through a digit string.
type decodeState string

const (
	stateStart decodeState = "START"
	statePair  decodeState = "PAIR"
	stateDone  decodeState = "DONE"
)

// Decode renders every block at its natural decimal magnitude, concatenates
// the renderings in order, and decodes the resulting digit stream. Block
// boundaries mean nothing on this side; only the digits do.
func Decode(blocks []*big.Int) string {
	var sb strings.Builder
	for _, b := range blocks {
		sb.WriteString(b.Text(10))
	}
	return DecodeDigits(sb.String())
}

// DecodeDigits decodes a digit string two characters at a time. An
// odd-length string is assumed to have lost a leading zero off its first
// pair and is padded back; a zero dropped anywhere else is undetectable
// here, which is the encoding side's problem to prevent. Pairs missing from
// the table decode to Sentinel.
func DecodeDigits(digits string) string {
	var out strings.Builder
	out.Grow(len(digits) / 2)

	state := stateStart
	for state != stateDone {
		switch state {
		case stateStart:
			if len(digits)%2 != 0 {
				digits = "0" + digits
			}
			state = statePair
		case statePair:
			if len(digits) == 0 {
				state = stateDone
				break
			}
			pair := digits[:2]
			digits = digits[2:]
			if ch, ok := codeToChar[pair]; ok {
				out.WriteRune(ch)
			} else {
				out.WriteRune(Sentinel)
			}
		}
	}
	return out.String()
}
