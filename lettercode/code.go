// Package lettercode implements the fixed two-digit letter code carried by
// the messages this system works with: "00" is a space and "11" through
// "36" are the letters A through Z. Decoding tolerates pairs outside the
// table; encoding does not.
package lettercode

// codeToChar is the decode table. Initialized once, never mutated.
var codeToChar = map[string]rune{
	"00": ' ',
	"11": 'A', "12": 'B', "13": 'C', "14": 'D', "15": 'E', "16": 'F',
	"17": 'G', "18": 'H', "19": 'I', "20": 'J', "21": 'K', "22": 'L',
	"23": 'M', "24": 'N', "25": 'O', "26": 'P', "27": 'Q', "28": 'R',
	"29": 'S', "30": 'T', "31": 'U', "32": 'V', "33": 'W', "34": 'X',
	"35": 'Y', "36": 'Z',
}

// charToCode is derived from codeToChar at init so the two directions
// cannot drift apart.
var charToCode = func() map[rune]string {
	m := make(map[rune]string, len(codeToChar))
	for code, ch := range codeToChar {
		m[ch] = code
	}
	return m
}()

// Sentinel replaces any digit pair outside the table during decoding. A
// garbled message is still worth inspecting, so unmapped pairs degrade to
// this instead of failing the decode.
const Sentinel = '?'
